// Package urlstate moves a search selection in and out of URL query parameters
// so a search can be shared and replayed
package urlstate

import (
	"net/url"

	"housepricing/internal/core/filter"
	"housepricing/internal/core/housetype"
)

// Query parameter names
const (
	ParamStart      = "start"
	ParamEnd        = "end"
	ParamHouseTypes = "houseTypes"
)

// Apply overwrites the selection's parameters in q, leaving other keys alone
func Apply(q url.Values, sel filter.Selection) {
	q.Set(ParamStart, sel.StartQuarter)
	q.Set(ParamEnd, sel.EndQuarter)
	q.Set(ParamHouseTypes, housetype.Join(sel.HouseTypes))
}

// Encode returns a copy of u whose query carries sel. u is not modified
func Encode(u *url.URL, sel filter.Selection) *url.URL {
	out := &url.URL{}
	if u != nil {
		c := *u
		out = &c
	}
	q := out.Query()
	Apply(q, sel)
	out.RawQuery = q.Encode()
	return out
}

// Query renders sel as a bare query string, e.g. for a share link
func Query(sel filter.Selection) string {
	q := url.Values{}
	Apply(q, sel)
	return q.Encode()
}

// Decode reads a selection from q. ok is false when a parameter is missing or
// empty, or when any house type is not a known code; callers fall back to defaults
func Decode(q url.Values) (filter.Selection, bool) {
	ht := q.Get(ParamHouseTypes)
	start := q.Get(ParamStart)
	end := q.Get(ParamEnd)
	if ht == "" || start == "" || end == "" {
		return filter.Selection{}, false
	}
	codes, ok := housetype.ParseList(ht)
	if !ok {
		return filter.Selection{}, false
	}
	return filter.Selection{HouseTypes: codes, StartQuarter: start, EndQuarter: end}, true
}

// DecodeURL is Decode over a raw URL. An unparsable URL decodes as absent
func DecodeURL(raw string) (filter.Selection, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return filter.Selection{}, false
	}
	return Decode(u.Query())
}

// DecodeOrDefault is Decode with the form defaults as fallback
func DecodeOrDefault(q url.Values) (sel filter.Selection, fromURL bool) {
	if sel, ok := Decode(q); ok {
		return sel, true
	}
	return filter.Default(), false
}
