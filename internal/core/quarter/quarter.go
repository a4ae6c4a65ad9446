// Package quarter implements the YYYYKQ quarter values the price table is indexed by:
// parsing, ordering, range expansion and date validation
package quarter

import (
	"math"
	"strconv"
	"strings"

	perr "housepricing/internal/platform/errors"
)

// Marker separates the year from the quarter digit, as in 2009K1
const Marker = "K"

// MinYear is the first year the price table has data for
const MinYear = 2009

// MaxYear is the largest year whose Index fits in an int
const MaxYear = math.MaxInt/4 - 1

// Form defaults for a fresh search
const (
	DefaultStart = "2009K1"
	DefaultEnd   = "2010K1"
)

// Value is a parsed quarter value
type Value struct {
	Year    int
	Quarter int
}

// String renders v in YYYYKQ form
func (v Value) String() string { return Format(v.Year, v.Quarter) }

// Index is the quarter ordinal: consecutive quarters differ by one
func (v Value) Index() int { return v.Year*4 + v.Quarter - 1 }

// Next returns the following quarter, wrapping 4 to 1 into the next year
func (v Value) Next() Value {
	if v.Quarter >= 4 {
		return Value{Year: v.Year + 1, Quarter: 1}
	}
	return Value{Year: v.Year, Quarter: v.Quarter + 1}
}

// Format renders a year and quarter as YYYYKQ
func Format(year, quarter int) string {
	return strconv.Itoa(year) + Marker + strconv.Itoa(quarter)
}

// Split returns the raw year and quarter substrings of s. Missing parts are ""
func Split(s string) (year, quarter string) {
	parts := strings.SplitN(s, Marker, 3)
	year = parts[0]
	if len(parts) > 1 {
		quarter = parts[1]
	}
	return year, quarter
}

// Parse reads a canonical YYYYKQ value. The year must be a positive integer
// without sign or leading zeros, at most MaxYear, and the quarter a single
// digit 1 to 4
func Parse(s string) (Value, error) {
	ys, qs, ok := strings.Cut(s, Marker)
	if !ok {
		return Value{}, invalidFormat(s)
	}
	if ys == "" || ys[0] == '0' || !digits(ys) {
		return Value{}, invalidFormat(s)
	}
	year, err := strconv.Atoi(ys)
	if err != nil || year <= 0 || year > MaxYear {
		return Value{}, invalidFormat(s)
	}
	if len(qs) != 1 || qs[0] < '1' || qs[0] > '4' {
		return Value{}, invalidFormat(s)
	}
	return Value{Year: year, Quarter: int(qs[0] - '0')}, nil
}

// MustParse is Parse for constants; it panics on bad input
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

const msgInvalidFormat = "invalid range: Your range start and end should be in correct format YYYYKQ"

func invalidFormat(s string) error {
	return perr.WithMeta(perr.New(perr.ErrorCodeInvalidFormat, msgInvalidFormat), "value", s)
}
