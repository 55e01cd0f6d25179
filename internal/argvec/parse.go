package argvec

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Parse consumes the next token and scans it into dst using the textual rules
// of fmt.Fscan for dst's type. Integers follow Go literal syntax, so "0x1F"
// reads as 31 and "1_000" as 1000.
//
// Running out of tokens is the only error. A token that cannot be scanned at
// all leaves the zero value in dst and writes an Error line to v.Log(). A
// token whose tail is left over after scanning keeps the scanned value and
// writes a Warning line naming the leftover. At most one line is written.
func Parse[T any](v *Vector, dst *T) error {
	token, err := v.Next()
	if err != nil {
		return err
	}
	if !scanToken(v.log, token, dst) {
		var zero T
		*dst = zero
	}
	return nil
}

// Scan parses one token into each of dsts, left to right, like chained calls
// to Parse. Every element of dsts must be a non-nil pointer. It stops at the
// first ErrOutOfRange, leaving the remaining destinations untouched.
func (v *Vector) Scan(dsts ...any) error {
	for _, dst := range dsts {
		token, err := v.Next()
		if err != nil {
			return err
		}
		if !scanToken(v.log, token, dst) {
			if rv := reflect.ValueOf(dst); rv.Kind() == reflect.Pointer && !rv.IsNil() {
				rv.Elem().SetZero()
			}
		}
	}
	return nil
}

// scanToken reports whether anything could be scanned from token.
func scanToken(log io.Writer, token string, dst any) bool {
	r := strings.NewReader(token)
	if _, err := fmt.Fscan(r, dst); err != nil {
		fmt.Fprintf(log, "Error: could not parse %s.\n", token)
		return false
	}
	if r.Len() > 0 {
		fmt.Fprintf(log, "Warning: partially parsed string\nUnparsed bit: '%s'\n", token[len(token)-r.Len():])
	}
	return true
}
