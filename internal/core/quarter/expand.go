package quarter

import (
	"strconv"

	perr "housepricing/internal/platform/errors"
)

// maxPrealloc bounds the up front allocation for very long ranges
const maxPrealloc = 1 << 12

// Expand returns every quarter from start to end inclusive.
// A reversed range is rejected up front; generation only runs forward
func Expand(start, end string) ([]string, error) {
	s, err := Parse(start)
	if err != nil {
		return nil, perr.WithField(err, "start")
	}
	e, err := Parse(end)
	if err != nil {
		return nil, perr.WithField(err, "end")
	}
	if e.Index() < s.Index() {
		err := perr.Newf(perr.ErrorCodeRangeOrder, "range end %s precedes start %s", end, start)
		err = perr.WithMeta(err, "value", end)
		return nil, perr.WithMeta(err, "bound", start)
	}

	out := make([]string, 0, min(e.Index()-s.Index()+1, maxPrealloc))
	for v := s; ; v = v.Next() {
		q := v.String()
		out = append(out, q)
		if q == end {
			return out, nil
		}
	}
}

// Len is the number of quarters Expand would produce for a valid forward range
func Len(start, end Value) int {
	return 4*(end.Year-start.Year) + (end.Quarter - start.Quarter) + 1
}

// Span formats a range for logs, e.g. 2009K1..2010K1 (5)
func Span(start, end string) string {
	s, err1 := Parse(start)
	e, err2 := Parse(end)
	if err1 != nil || err2 != nil || e.Index() < s.Index() {
		return start + ".." + end
	}
	return start + ".." + end + " (" + strconv.Itoa(Len(s, e)) + ")"
}
