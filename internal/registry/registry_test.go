package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/specialistvlad/porrinha/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlayer struct {
	name string
	hand int
}

func (s *stubPlayer) Name() string                      { return s.name }
func (s *stubPlayer) Hand() int                         { return s.hand }
func (s *stubPlayer) Guess([]player.Guess) player.Guess { return player.Number(0) }
func (s *stubPlayer) SettleRound([]int, []player.Guess) {}

// oneArg consumes a single integer token as the hand.
func oneArg(seat, chopsticks int, args *argvec.Vector) (player.Player, error) {
	p := &stubPlayer{name: args.ProgramName()}
	if err := argvec.Parse(args, &p.hand); err != nil {
		return nil, err
	}
	return p, nil
}

type stubModule struct{}

func (stubModule) Register(r *Registry) {
	r.Register("stub", oneArg)
	r.Register("broken", func(int, int, *argvec.Vector) (player.Player, error) {
		return nil, errors.New("boom")
	})
}

func spec(tokens ...string) *argvec.Vector {
	return argvec.New(tokens)
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("stub", oneArg)
	require.Panics(t, func() { r.Register("stub", oneArg) })
}

func TestNames(t *testing.T) {
	t.Parallel()

	r := NewWithModules(stubModule{})
	assert.Equal(t, []string{"broken", "stub"}, r.Names())

	_, ok := r.Lookup("stub")
	assert.True(t, ok)
	_, ok = r.Lookup("nope")
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	r := NewWithModules(stubModule{})
	ctx := context.Background()

	p, err := r.Build(ctx, 0, 3, spec("stub", "2"))
	require.NoError(t, err)
	assert.Equal(t, "stub", p.Name())
	assert.Equal(t, 2, p.Hand())

	testCases := []struct {
		name       string
		spec       *argvec.Vector
		wantReason string
		wantRange  bool
	}{
		{name: "unknown kind", spec: spec("ghost"), wantReason: "unknown player kind"},
		{name: "missing token", spec: spec("stub"), wantReason: "missing arguments", wantRange: true},
		{name: "leftover tokens", spec: spec("stub", "1", "x", "y"), wantReason: "unexpected arguments x y"},
		{name: "factory error", spec: spec("broken"), wantReason: "invalid arguments"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Build(ctx, 4, 3, tc.spec)
			require.Error(t, err)

			var specErr *SpecError
			require.ErrorAs(t, err, &specErr)
			assert.Equal(t, 4, specErr.Seat)
			assert.Equal(t, tc.wantReason, specErr.Reason)
			assert.Equal(t, tc.wantRange, errors.Is(err, argvec.ErrOutOfRange))
		})
	}
}

func TestBuildAll(t *testing.T) {
	t.Parallel()

	r := NewWithModules(stubModule{})
	players, err := r.BuildAll(context.Background(), 3, []*argvec.Vector{
		spec("stub", "1"),
		spec("stub", "0"),
	})
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, 1, players[0].Hand())

	_, err = r.BuildAll(context.Background(), 3, []*argvec.Vector{spec("stub", "1"), spec("ghost")})
	assert.EqualError(t, err, "player 1 (ghost): unknown player kind")
}
