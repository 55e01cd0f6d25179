package player

import "strconv"

// Kind tells which variant a Guess holds.
type Kind int

const (
	// KindPending marks a player that has not guessed yet this round.
	KindPending Kind = iota
	// KindNumber is an actual guess for the total.
	KindNumber
	// KindWithdrawn marks a player that is no longer in the game.
	KindWithdrawn
	// KindInvalid marks a guess rejected by the rules (out of range or
	// already taken).
	KindInvalid
)

// Guess is a player's call for a round. The zero value is Pending.
type Guess struct {
	kind  Kind
	value int
}

// Pending returns a guess that has not been made yet.
func Pending() Guess { return Guess{kind: KindPending} }

// Number returns a guess for the total n.
func Number(n int) Guess { return Guess{kind: KindNumber, value: n} }

// Withdrawn returns the placeholder for a player out of the game.
func Withdrawn() Guess { return Guess{kind: KindWithdrawn} }

// Invalid returns a rejected guess.
func Invalid() Guess { return Guess{kind: KindInvalid} }

// Kind returns the variant of g.
func (g Guess) Kind() Kind { return g.kind }

// Value returns the guessed total and true when g is a Number.
func (g Guess) Value() (int, bool) {
	if g.kind != KindNumber {
		return 0, false
	}
	return g.value, true
}

// Is reports whether g is the number n.
func (g Guess) Is(n int) bool {
	return g.kind == KindNumber && g.value == n
}

func (g Guess) String() string {
	switch g.kind {
	case KindNumber:
		return strconv.Itoa(g.value)
	case KindWithdrawn:
		return "-"
	case KindInvalid:
		return "invalid"
	default:
		return "?"
	}
}

// Taken reports whether n is already guessed in guesses.
func Taken(guesses []Guess, n int) bool {
	for _, g := range guesses {
		if g.Is(n) {
			return true
		}
	}
	return false
}

// Nearest returns the value in [lo, hi] closest to want that is not Taken in
// guesses, preferring the lower one on ties. It returns Invalid when every
// value is taken.
func Nearest(guesses []Guess, want, lo, hi int) Guess {
	want = min(max(want, lo), hi)
	for d := 0; d <= hi-lo; d++ {
		if n := want - d; n >= lo && !Taken(guesses, n) {
			return Number(n)
		}
		if n := want + d; n <= hi && !Taken(guesses, n) {
			return Number(n)
		}
	}
	return Invalid()
}
