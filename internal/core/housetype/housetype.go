// Package housetype holds the closed set of dwelling categories the price table is keyed by
package housetype

import (
	"slices"
	"strings"
)

// Code is the category identifier used by the statistics table (Boligtype)
type Code string

// Known codes
const (
	Total           Code = "00"
	Small           Code = "02"
	BlockApartments Code = "03"
)

// HouseType pairs a code with its display label
type HouseType struct {
	Code  Code   `json:"code"`
	Label string `json:"label"`
}

var table = map[Code]string{
	Total:           "Total",
	Small:           "Small",
	BlockApartments: "Block Apartments",
}

// Lookup returns the house type for code
func Lookup(code Code) (HouseType, bool) {
	l, ok := table[code]
	if !ok {
		return HouseType{}, false
	}
	return HouseType{Code: code, Label: l}, true
}

// Label returns the display label for code, "" when unknown
func Label(code Code) string { return table[code] }

// Valid reports whether code is in the fixed set
func Valid(code Code) bool {
	_, ok := table[code]
	return ok
}

// All returns every house type ordered by code
func All() []HouseType {
	out := make([]HouseType, 0, len(table))
	for c, l := range table {
		out = append(out, HouseType{Code: c, Label: l})
	}
	slices.SortFunc(out, func(a, b HouseType) int { return strings.Compare(string(a.Code), string(b.Code)) })
	return out
}

// Codes returns every code ordered ascending
func Codes() []Code {
	all := All()
	out := make([]Code, len(all))
	for i, h := range all {
		out[i] = h.Code
	}
	return out
}

// ParseList splits a comma-joined list of codes. ok is false when the list is
// empty or any element is not a known code
func ParseList(s string) ([]Code, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, false
	}
	parts := strings.Split(s, ",")
	out := make([]Code, 0, len(parts))
	for _, p := range parts {
		c := Code(p)
		if !Valid(c) {
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

// Join renders codes as a comma-joined list
func Join(codes []Code) string {
	ss := make([]string, len(codes))
	for i, c := range codes {
		ss[i] = string(c)
	}
	return strings.Join(ss, ",")
}

// Strings converts codes to plain strings
func Strings(codes []Code) []string {
	ss := make([]string, len(codes))
	for i, c := range codes {
		ss[i] = string(c)
	}
	return ss
}
