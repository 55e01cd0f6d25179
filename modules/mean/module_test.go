package mean

import (
	"testing"

	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/specialistvlad/porrinha/internal/player"
	"github.com/specialistvlad/porrinha/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Parallel()

	p, err := New(1, 3, argvec.New([]string{Kind}))
	require.NoError(t, err)
	assert.Equal(t, "mean#1", p.Name())
	assert.Equal(t, 1, p.Hand())

	// Three seats holding 3 each: its own 1 plus half of the other 6.
	fresh := []player.Guess{player.Pending(), player.Pending(), player.Pending()}
	assert.Equal(t, player.Number(4), p.Guess(fresh))

	taken := []player.Guess{player.Number(4), player.Pending(), player.Pending()}
	assert.Equal(t, player.Number(3), p.Guess(taken))
}

func TestSettleRound(t *testing.T) {
	t.Parallel()

	p, err := New(0, 2, argvec.New([]string{Kind}))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Hand())

	p.SettleRound([]int{1, 2}, []player.Guess{player.Number(3), player.Number(2)})
	assert.Equal(t, 0, p.Hand(), "down to one chopstick")
}

func TestRegister(t *testing.T) {
	t.Parallel()

	r := registry.NewWithModules(&Module{})
	f, ok := r.Lookup(Kind)
	require.True(t, ok)

	_, err := f(0, 3, argvec.New([]string{Kind}))
	assert.NoError(t, err)
}
