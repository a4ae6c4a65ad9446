package quarter

import "strings"

// IsGreater reports whether a comes strictly after b.
// Years are compared as raw digit strings, then quarters the same way. This
// matches numeric order only when both years have the same number of digits
func IsGreater(a, b string) bool {
	ya, qa := Split(a)
	yb, qb := Split(b)
	if ya != yb {
		return ya > yb
	}
	return qa > qb
}

// Compare orders a and b with the same rules as IsGreater, returning -1, 0 or +1
func Compare(a, b string) int {
	ya, qa := Split(a)
	yb, qb := Split(b)
	if c := strings.Compare(ya, yb); c != 0 {
		return c
	}
	return strings.Compare(qa, qb)
}
