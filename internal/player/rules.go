package player

// Scorer returns the seat whose guess equals the sum of hands, or -1 when
// nobody got it right. Guesses are unique, so there is at most one.
func Scorer(hands []int, guesses []Guess) int {
	total := 0
	for _, h := range hands {
		total += h
	}
	for seat, g := range guesses {
		if g.Is(total) {
			return seat
		}
	}
	return -1
}

// Tally follows the chopsticks of every seat from the rounds a player is
// shown. All seats start with the same count.
type Tally struct {
	start  int
	counts []int
}

// NewTally returns a Tally where every seat holds chopsticks.
func NewTally(chopsticks int) *Tally {
	return &Tally{start: chopsticks}
}

// Own returns the chopsticks held by seat.
func (t *Tally) Own(seat int) int {
	if seat < len(t.counts) {
		return t.counts[seat]
	}
	return t.start
}

// Total returns the chopsticks in play at a table of seats.
func (t *Tally) Total(seats int) int {
	total := 0
	for seat := range seats {
		total += t.Own(seat)
	}
	return total
}

// Settle records the outcome of a round.
func (t *Tally) Settle(hands []int, guesses []Guess) {
	for len(t.counts) < len(hands) {
		t.counts = append(t.counts, t.start)
	}
	if seat := Scorer(hands, guesses); seat >= 0 && t.counts[seat] > 0 {
		t.counts[seat]--
	}
}
