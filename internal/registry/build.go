package registry

import (
	"context"
	"errors"

	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/specialistvlad/porrinha/internal/ctxlog"
	"github.com/specialistvlad/porrinha/internal/player"
)

// Build creates the player at seat from its sub-command. spec.ProgramName()
// selects the factory; the factory reads the remaining tokens.
func (r *Registry) Build(ctx context.Context, seat, chopsticks int, spec *argvec.Vector) (player.Player, error) {
	logger := ctxlog.FromContext(ctx)
	kind := spec.ProgramName()

	factory, ok := r.Lookup(kind)
	if !ok {
		return nil, &SpecError{Seat: seat, Kind: kind, Reason: "unknown player kind"}
	}

	logger.Debug("Building player.", "seat", seat, "kind", kind, "args", spec.Remaining())
	p, err := factory(seat, chopsticks, spec)
	if err != nil {
		if errors.Is(err, argvec.ErrOutOfRange) {
			return nil, &SpecError{Seat: seat, Kind: kind, Reason: "missing arguments", Err: err}
		}
		return nil, &SpecError{Seat: seat, Kind: kind, Reason: "invalid arguments", Err: err}
	}
	if err := checkConsumed(seat, spec); err != nil {
		return nil, err
	}
	return p, nil
}

// BuildAll builds one player per spec, seating them in order.
func (r *Registry) BuildAll(ctx context.Context, chopsticks int, specs []*argvec.Vector) ([]player.Player, error) {
	players := make([]player.Player, 0, len(specs))
	for seat, spec := range specs {
		p, err := r.Build(ctx, seat, chopsticks, spec)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
