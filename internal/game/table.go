package game

import (
	"context"
	"slices"

	"github.com/specialistvlad/porrinha/internal/ctxlog"
	"github.com/specialistvlad/porrinha/internal/player"
)

type table struct {
	players []player.Player
	counts  []int
}

func (t *table) active() int {
	n := 0
	for _, c := range t.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// nextActive returns the first seat after seat, wrapping around, that still
// holds chopsticks.
func (t *table) nextActive(seat int) int {
	for i := 1; i <= len(t.counts); i++ {
		next := (seat + i) % len(t.counts)
		if t.counts[next] > 0 {
			return next
		}
	}
	return -1
}

func (t *table) inPlay() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

func (t *table) playRound(ctx context.Context, number, first int) Round {
	logger := ctxlog.FromContext(ctx)
	n := len(t.players)
	r := Round{
		Number:  number,
		First:   first,
		Hands:   make([]int, n),
		Guesses: make([]player.Guess, n),
		Scorer:  -1,
	}

	for seat, p := range t.players {
		if t.counts[seat] == 0 {
			r.Guesses[seat] = player.Withdrawn()
			continue
		}
		hand := p.Hand()
		if hand < 0 || hand > t.counts[seat] {
			logger.Warn("Hand out of range, counted as zero.", "player", p.Name(), "hand", hand, "holds", t.counts[seat])
			hand = 0
		}
		r.Hands[seat] = hand
		r.Total += hand
	}

	limit := t.inPlay()
	for i := range n {
		seat := (first + i) % n
		if t.counts[seat] == 0 {
			continue
		}
		g := t.players[seat].Guess(slices.Clone(r.Guesses))
		if v, ok := g.Value(); !ok || v < 0 || v > limit || player.Taken(r.Guesses, v) {
			logger.Debug("Guess rejected.", "player", t.players[seat].Name(), "guess", g.String(), "limit", limit)
			g = player.Invalid()
		}
		r.Guesses[seat] = g
	}

	r.Scorer = player.Scorer(r.Hands, r.Guesses)
	if r.Scorer >= 0 {
		t.counts[r.Scorer]--
	}
	r.Chopsticks = slices.Clone(t.counts)

	for _, p := range t.players {
		p.SettleRound(slices.Clone(r.Hands), slices.Clone(r.Guesses))
	}
	return r
}
