package argvec

import "strings"

// Predicate decides whether a token is a boundary for SubArgUntil and
// SubCmdUntil.
type Predicate func(token string) bool

// Equal matches tokens equal to s, e.g. the "--" terminator.
func Equal(s string) Predicate {
	return func(token string) bool {
		return token == s
	}
}

// Bracketed matches tokens wrapped in open and close with something in
// between, such as "[random]".
func Bracketed(open, close string) Predicate {
	return func(token string) bool {
		return len(token) > len(open)+len(close) &&
			strings.HasPrefix(token, open) &&
			strings.HasSuffix(token, close)
	}
}

// Unbracket strips open and close from a token matched by Bracketed. Other
// tokens are returned unchanged.
func Unbracket(token, open, close string) string {
	if !Bracketed(open, close)(token) {
		return token
	}
	return token[len(open) : len(token)-len(close)]
}
