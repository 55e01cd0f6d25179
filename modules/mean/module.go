// Package mean provides the "mean" player. It hides half of its chopsticks
// and bets that everybody else does the same.
//
//	[mean]
package mean

import (
	"fmt"

	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/specialistvlad/porrinha/internal/player"
	"github.com/specialistvlad/porrinha/internal/registry"
)

// Kind is the name this player is registered under.
const Kind = "mean"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Player hides half of its chopsticks and guesses from that assumption.
type Player struct {
	seat  int
	tally *player.Tally
}

// New is the player.Factory for the mean player. It takes no tokens.
func New(seat, chopsticks int, _ *argvec.Vector) (player.Player, error) {
	return &Player{seat: seat, tally: player.NewTally(chopsticks)}, nil
}

// Name reports the kind and seat, e.g. "mean#1".
func (p *Player) Name() string {
	return fmt.Sprintf("%s#%d", Kind, p.seat)
}

// Hand shows half of the chopsticks the player still holds.
func (p *Player) Hand() int {
	return p.tally.Own(p.seat) / 2
}

// Guess expects the other active players to show half of what they hold.
func (p *Player) Guess(others []player.Guess) player.Guess {
	total := p.tally.Total(len(others))
	rest := total - p.tally.Own(p.seat)
	return player.Nearest(others, p.Hand()+(rest+1)/2, 0, total)
}

// SettleRound updates the chopstick tally from the round outcome.
func (p *Player) SettleRound(hands []int, guesses []player.Guess) {
	p.tally.Settle(hands, guesses)
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Kind, New)
}
