package player

import "github.com/specialistvlad/porrinha/internal/argvec"

// Player is one seat at the table.
type Player interface {
	// Name identifies the player in the game output.
	Name() string

	// Hand returns how many of its chopsticks the player hides this round.
	Hand() int

	// Guess returns the player's guess for the total of all hands. others is
	// indexed by seat: earlier guesses of this round, Pending for players that
	// still have to guess, Withdrawn for players out of the game.
	Guess(others []Guess) Guess

	// SettleRound reveals every hand and the final guesses of the round, both
	// indexed by seat. Withdrawn players show a hand of zero.
	SettleRound(hands []int, guesses []Guess)
}

// Factory builds the player sitting at seat, starting with chopsticks, from
// the tokens of its sub-command. args.ProgramName() is the player kind.
// Factories consume the tokens they understand; leftovers are reported by the
// caller.
type Factory func(seat, chopsticks int, args *argvec.Vector) (Player, error)
