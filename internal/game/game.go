package game

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/porrinha/internal/ctxlog"
	"github.com/specialistvlad/porrinha/internal/player"
)

// ErrNotEnoughPlayers is returned by Play for tables of fewer than two.
var ErrNotEnoughPlayers = errors.New("game: at least two players are needed")

// Rules configures a match.
type Rules struct {
	Chopsticks int // starting chopsticks per player
	MaxRounds  int // 0 means no limit
}

// Round is the public record of one round, indexed by seat.
type Round struct {
	Number     int
	First      int // seat that guessed first
	Hands      []int
	Guesses    []player.Guess
	Total      int
	Scorer     int   // seat that called the total, or -1
	Chopsticks []int // holdings after the round
}

// Result summarizes a match.
type Result struct {
	Rounds     int
	Withdrawn  []int // seats in the order they got rid of their chopsticks
	Loser      int   // -1 when the round limit ended the match
	Chopsticks []int
}

// Play runs a match until one player is left or rules.MaxRounds is reached.
// onRound, when not nil, is called after every round. The context is checked
// between rounds.
func Play(ctx context.Context, players []player.Player, rules Rules, onRound func(Round)) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if rules.Chopsticks < 1 {
		return nil, fmt.Errorf("game: chopsticks must be positive, got %d", rules.Chopsticks)
	}
	if rules.MaxRounds < 0 {
		return nil, fmt.Errorf("game: round limit must not be negative, got %d", rules.MaxRounds)
	}

	t := &table{players: players, counts: make([]int, len(players))}
	for seat := range t.counts {
		t.counts[seat] = rules.Chopsticks
	}
	res := &Result{Loser: -1}

	logger.Debug("Match started.", "players", len(players), "chopsticks", rules.Chopsticks, "max_rounds", rules.MaxRounds)
	first := 0
	for t.active() > 1 {
		if rules.MaxRounds > 0 && res.Rounds >= rules.MaxRounds {
			logger.Warn("Round limit reached, no loser.", "rounds", res.Rounds)
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match interrupted after %d rounds: %w", res.Rounds, err)
		}

		res.Rounds++
		r := t.playRound(ctx, res.Rounds, first)
		if r.Scorer >= 0 && t.counts[r.Scorer] == 0 {
			logger.Debug("Player withdrew.", "seat", r.Scorer, "round", r.Number)
			res.Withdrawn = append(res.Withdrawn, r.Scorer)
		}
		if onRound != nil {
			onRound(r)
		}
		first = t.nextActive(first)
	}

	if t.active() == 1 {
		res.Loser = t.nextActive(-1)
	}
	res.Chopsticks = slices.Clone(t.counts)
	logger.Debug("Match finished.", "rounds", res.Rounds, "loser", res.Loser)
	return res, nil
}
