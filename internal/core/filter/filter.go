// Package filter holds the search selection a user submits: house types and a quarter range
package filter

import (
	"housepricing/internal/core/housetype"
	"housepricing/internal/core/quarter"
	perr "housepricing/internal/platform/errors"
)

// Selection is one price search
type Selection struct {
	HouseTypes   []housetype.Code `json:"houseTypes" validate:"required,min=1,dive,housetype" example:"00,02"`
	StartQuarter string           `json:"startQuarter" validate:"required,quarter" example:"2009K1"`
	EndQuarter   string           `json:"endQuarter" validate:"required,quarter" example:"2010K1"`
}

// Default is the selection a fresh form starts with
func Default() Selection {
	return Selection{
		HouseTypes:   housetype.Codes(),
		StartQuarter: quarter.DefaultStart,
		EndQuarter:   quarter.DefaultEnd,
	}
}

// Validate checks the house types and the quarter range against v's clock
func (s Selection) Validate(v quarter.Validator) error {
	if len(s.HouseTypes) == 0 {
		return perr.WithField(perr.New(perr.ErrorCodeValidation, "choose at least one house type"), "houseTypes")
	}
	for _, c := range s.HouseTypes {
		if !housetype.Valid(c) {
			err := perr.Newf(perr.ErrorCodeValidation, "unknown house type %q", c)
			return perr.WithMeta(perr.WithField(err, "houseTypes"), "value", string(c))
		}
	}
	return v.Range(s.StartQuarter, s.EndQuarter)
}

// Quarters expands the selection's range
func (s Selection) Quarters() ([]string, error) {
	return quarter.Expand(s.StartQuarter, s.EndQuarter)
}

// Equal reports whether two selections name the same search
func (s Selection) Equal(o Selection) bool {
	if s.StartQuarter != o.StartQuarter || s.EndQuarter != o.EndQuarter || len(s.HouseTypes) != len(o.HouseTypes) {
		return false
	}
	for i := range s.HouseTypes {
		if s.HouseTypes[i] != o.HouseTypes[i] {
			return false
		}
	}
	return true
}
