package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/specialistvlad/porrinha/internal/game"
	"github.com/specialistvlad/porrinha/internal/player"
)

// Run loads the match file, seats the players and plays the match.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	var fileChopsticks, fileRounds *int
	var specs []*argvec.Vector
	if appConfig.ConfigPath != "" {
		match, err := a.loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load match file: %w", err)
		}
		fileChopsticks, fileRounds = match.Chopsticks, match.Rounds
		specs = append(specs, match.Players...)
	}
	specs = append(specs, appConfig.Players...)

	rules := game.Rules{
		Chopsticks: pick(DefaultChopsticks, appConfig.Chopsticks, fileChopsticks),
		MaxRounds:  pick(DefaultRounds, appConfig.Rounds, fileRounds),
	}
	a.logger.Debug("Rules resolved.", "chopsticks", rules.Chopsticks, "max_rounds", rules.MaxRounds, "players", len(specs))

	players, err := a.registry.BuildAll(ctx, rules.Chopsticks, specs)
	if err != nil {
		return fmt.Errorf("failed to seat players: %w", err)
	}

	a.logger.Info("Starting match.", "players", len(players), "chopsticks", rules.Chopsticks)
	res, err := game.Play(ctx, players, rules, func(r game.Round) {
		a.printRound(players, r)
	})
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if res.Loser >= 0 {
		fmt.Fprintf(a.outW, "%s loses after %d rounds.\n", players[res.Loser].Name(), res.Rounds)
	} else {
		fmt.Fprintf(a.outW, "No loser after %d rounds.\n", res.Rounds)
	}
	a.logger.Info("Match finished.", "rounds", res.Rounds, "withdrawn", len(res.Withdrawn))
	return nil
}

func (a *App) printRound(players []player.Player, r game.Round) {
	hands := make([]string, len(r.Hands))
	guesses := make([]string, len(r.Guesses))
	for seat := range players {
		if r.Guesses[seat].Kind() == player.KindWithdrawn {
			hands[seat] = "-"
		} else {
			hands[seat] = fmt.Sprint(r.Hands[seat])
		}
		guesses[seat] = r.Guesses[seat].String()
	}

	outcome := "nobody called it"
	if r.Scorer >= 0 {
		name := players[r.Scorer].Name()
		if left := r.Chopsticks[r.Scorer]; left > 0 {
			outcome = fmt.Sprintf("%s called it, %d left", name, left)
		} else {
			outcome = fmt.Sprintf("%s called it and is out", name)
		}
	}
	fmt.Fprintf(a.outW, "Round %d: hands [%s] guesses [%s] total %d, %s.\n",
		r.Number, strings.Join(hands, " "), strings.Join(guesses, " "), r.Total, outcome)
}
