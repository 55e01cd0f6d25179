package argvec

import (
	"io"
	"math"
	"os"
	"slices"
	"strings"
)

// Vector is an ordered sequence of tokens with a cursor separating the
// consumed tokens from the remaining ones.
//
// A Vector owns its tokens: slices taken from it are independent copies, so
// appending to a child never affects the parent. The log sink is not owned
// and is shared with every child sliced off this Vector.
//
// A Vector is not safe for concurrent use.
type Vector struct {
	tokens []string
	cursor int
	name   string
	log    io.Writer
}

// New builds a Vector from raw process arguments. argv[0] becomes the program
// name and the remaining elements become the tokens, verbatim and in order.
// The log sink defaults to os.Stderr.
func New(argv []string) *Vector {
	v := Empty()
	if len(argv) == 0 {
		return v
	}
	v.name = argv[0]
	v.tokens = slices.Clone(argv[1:])
	return v
}

// Empty returns a Vector with no tokens and no name, ready to be populated
// with PushBack and SetProgramName.
func Empty() *Vector {
	return &Vector{log: os.Stderr}
}

// Size returns the number of unconsumed tokens.
func (v *Vector) Size() int {
	return len(v.tokens) - v.cursor
}

// Peek returns the next token without consuming it.
func (v *Vector) Peek() (string, error) {
	if v.Size() == 0 {
		return "", &RangeError{Op: "peek", Need: 1, Have: 0}
	}
	return v.tokens[v.cursor], nil
}

// Shift consumes the next token.
func (v *Vector) Shift() error {
	if v.Size() == 0 {
		return &RangeError{Op: "shift", Need: 1, Have: 0}
	}
	v.cursor++
	return nil
}

// Next consumes the next token and returns it.
func (v *Vector) Next() (string, error) {
	if v.Size() == 0 {
		return "", &RangeError{Op: "next", Need: 1, Have: 0}
	}
	token := v.tokens[v.cursor]
	v.cursor++
	return token, nil
}

// PushBack appends a token after the last one. The cursor does not move.
func (v *Vector) PushBack(token string) {
	v.tokens = append(v.tokens, token)
}

// SubArg detaches the next n tokens into a new, nameless Vector and advances
// the cursor past them.
func (v *Vector) SubArg(n int) (*Vector, error) {
	if n < 0 || n > v.Size() {
		return nil, &RangeError{Op: "subarg", Need: n, Have: v.Size()}
	}
	child := v.slice(v.cursor, v.cursor+n)
	v.cursor += n
	return child, nil
}

// SubCmd is like SubArg, but the first token becomes the program name of the
// returned Vector. It consumes n+1 tokens.
func (v *Vector) SubCmd(n int) (*Vector, error) {
	if n < 0 || n > v.Size()-1 {
		return nil, &RangeError{Op: "subcmd", Need: min(n, math.MaxInt-1) + 1, Have: v.Size()}
	}
	child := v.slice(v.cursor+1, v.cursor+1+n)
	child.name = v.tokens[v.cursor]
	v.cursor += n + 1
	return child, nil
}

// SubArgUntil detaches every token up to, but not including, the first one
// satisfying stop. The stopping token stays as the next Peek. When no token
// satisfies stop, the whole remainder is detached. It never fails; the result
// may be empty.
func (v *Vector) SubArgUntil(stop Predicate) *Vector {
	end := v.scan(v.cursor, stop)
	child := v.slice(v.cursor, end)
	v.cursor = end
	return child
}

// SubCmdUntil consumes the next token as the program name of the returned
// Vector, then behaves like SubArgUntil on the tokens after it. stop is never
// evaluated on the name token.
func (v *Vector) SubCmdUntil(stop Predicate) (*Vector, error) {
	if v.Size() == 0 {
		return nil, &RangeError{Op: "subcmd_until", Need: 1, Have: 0}
	}
	end := v.scan(v.cursor+1, stop)
	child := v.slice(v.cursor+1, end)
	child.name = v.tokens[v.cursor]
	v.cursor = end
	return child, nil
}

// SetLog sets the diagnostic sink. It must outlive the Vector.
func (v *Vector) SetLog(w io.Writer) {
	v.log = w
}

// Log returns the diagnostic sink.
func (v *Vector) Log() io.Writer {
	return v.log
}

// SetProgramName sets the label of this Vector.
func (v *Vector) SetProgramName(name string) {
	v.name = name
}

// ProgramName returns the label of this Vector.
func (v *Vector) ProgramName() string {
	return v.name
}

// Remaining returns a copy of the unconsumed tokens.
func (v *Vector) Remaining() []string {
	return slices.Clone(v.tokens[v.cursor:])
}

// String renders the program name followed by the unconsumed tokens.
func (v *Vector) String() string {
	parts := append([]string{v.name}, v.tokens[v.cursor:]...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// scan returns the index of the first token at or after from that satisfies
// stop, or len(v.tokens). stop is evaluated once per scanned token.
func (v *Vector) scan(from int, stop Predicate) int {
	for i := from; i < len(v.tokens); i++ {
		if stop(v.tokens[i]) {
			return i
		}
	}
	return len(v.tokens)
}

func (v *Vector) slice(from, to int) *Vector {
	return &Vector{
		tokens: slices.Clone(v.tokens[from:to]),
		log:    v.log,
	}
}
