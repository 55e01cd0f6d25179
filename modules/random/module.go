// Package random provides the "random" player, which hides and guesses
// uniformly at random among the moves the rules allow.
//
//	[random] [SEED]
package random

import (
	"fmt"
	"math/rand/v2"

	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/specialistvlad/porrinha/internal/player"
	"github.com/specialistvlad/porrinha/internal/registry"
)

// Kind is the name this player is registered under.
const Kind = "random"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Player draws its hand and guess from a seeded generator.
type Player struct {
	seat  int
	rng   *rand.Rand
	tally *player.Tally
}

// New is the player.Factory for the random player. An optional token seeds
// its generator; without it every game differs.
func New(seat, chopsticks int, args *argvec.Vector) (player.Player, error) {
	seed := rand.Uint64()
	if args.Size() > 0 {
		if err := argvec.Parse(args, &seed); err != nil {
			return nil, err
		}
	}
	return &Player{
		seat:  seat,
		rng:   rand.New(rand.NewPCG(seed, uint64(seat))),
		tally: player.NewTally(chopsticks),
	}, nil
}

// Name reports the kind and seat, e.g. "random#2".
func (p *Player) Name() string {
	return fmt.Sprintf("%s#%d", Kind, p.seat)
}

// Hand shows a uniform draw between zero and what the player holds.
func (p *Player) Hand() int {
	return p.rng.IntN(p.tally.Own(p.seat) + 1)
}

// Guess draws a total that nobody has called yet.
func (p *Player) Guess(others []player.Guess) player.Guess {
	var free []int
	for n := range p.tally.Total(len(others)) + 1 {
		if !player.Taken(others, n) {
			free = append(free, n)
		}
	}
	if len(free) == 0 {
		return player.Invalid()
	}
	return player.Number(free[p.rng.IntN(len(free))])
}

// SettleRound updates the chopstick tally from the round outcome.
func (p *Player) SettleRound(hands []int, guesses []player.Guess) {
	p.tally.Settle(hands, guesses)
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Kind, New)
}
