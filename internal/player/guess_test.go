package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuess_Variants(t *testing.T) {
	t.Parallel()

	var zero Guess
	assert.Equal(t, KindPending, zero.Kind())
	assert.Equal(t, Pending(), zero)

	n, ok := Number(0).Value()
	assert.True(t, ok)
	assert.Equal(t, 0, n)
	assert.True(t, Number(0).Is(0))

	for _, g := range []Guess{Pending(), Withdrawn(), Invalid()} {
		_, ok := g.Value()
		assert.False(t, ok, g.String())
		assert.False(t, g.Is(0), "non-numeric guesses never match a total")
	}

	assert.Equal(t, "4", Number(4).String())
	assert.Equal(t, "?", Pending().String())
	assert.Equal(t, "-", Withdrawn().String())
	assert.Equal(t, "invalid", Invalid().String())
}

func TestNearest(t *testing.T) {
	t.Parallel()

	guesses := []Guess{Number(3), Pending(), Number(2), Withdrawn()}

	assert.Equal(t, Number(4), Nearest(guesses, 3, 0, 6), "ties go down, 2 is taken")
	assert.Equal(t, Number(1), Nearest(guesses, 2, 0, 3))
	assert.Equal(t, Number(6), Nearest(guesses, 9, 0, 6), "clamped to the range")
	assert.Equal(t, Invalid(), Nearest(guesses, 2, 2, 3))
	assert.True(t, Taken(guesses, 2))
	assert.False(t, Taken(guesses, 0))
}
