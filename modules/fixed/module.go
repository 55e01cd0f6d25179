// Package fixed provides the "fixed" player: it always hides the same number
// of chopsticks and always calls the same total.
//
//	[fixed] HAND GUESS
package fixed

import (
	"fmt"

	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/specialistvlad/porrinha/internal/player"
	"github.com/specialistvlad/porrinha/internal/registry"
)

// Kind is the name this player is registered under.
const Kind = "fixed"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Player plays HAND and GUESS every round, adjusted to what the rules allow.
type Player struct {
	seat  int
	hand  int
	guess int
	tally *player.Tally
}

// New is the player.Factory for the fixed player. It takes exactly two
// tokens.
func New(seat, chopsticks int, args *argvec.Vector) (player.Player, error) {
	cfg, err := args.SubArg(2)
	if err != nil {
		return nil, err
	}
	p := &Player{seat: seat, tally: player.NewTally(chopsticks)}
	if err := cfg.Scan(&p.hand, &p.guess); err != nil {
		return nil, err
	}
	if p.hand < 0 || p.guess < 0 {
		return nil, fmt.Errorf("hand and guess must not be negative, got %d and %d", p.hand, p.guess)
	}
	return p, nil
}

// Name reports the configured moves and seat, e.g. "fixed(1,2)#0".
func (p *Player) Name() string {
	return fmt.Sprintf("%s(%d,%d)#%d", Kind, p.hand, p.guess, p.seat)
}

// Hand never shows more chopsticks than the player holds.
func (p *Player) Hand() int {
	return min(p.hand, p.tally.Own(p.seat))
}

// Guess moves to the nearest free total when its own is taken.
func (p *Player) Guess(others []player.Guess) player.Guess {
	return player.Nearest(others, p.guess, 0, p.tally.Total(len(others)))
}

// SettleRound updates the chopstick tally from the round outcome.
func (p *Player) SettleRound(hands []int, guesses []player.Guess) {
	p.tally.Settle(hands, guesses)
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Kind, New)
}
