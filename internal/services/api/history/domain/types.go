// Package domain holds the search history types shared by repo, service and transport
package domain

import (
	"time"

	"housepricing/internal/core/filter"
	"housepricing/internal/core/housetype"

	"github.com/google/uuid"
)

// Entry is one confirmed search
type Entry struct {
	ID           uuid.UUID        `json:"id"           example:"0b9f6c1e-8d0e-4a57-9d4e-0c9d2b1f7a10"`
	Date         time.Time        `json:"date"         example:"2025-01-02T15:04:05Z"`
	StartQuarter string           `json:"startQuarter" example:"2009K1"`
	EndQuarter   string           `json:"endQuarter"   example:"2010K1"`
	HouseTypes   []housetype.Code `json:"houseTypes"   example:"00,02"`
}

// Selection returns the search the entry recorded
func (e Entry) Selection() filter.Selection {
	return filter.Selection{
		HouseTypes:   e.HouseTypes,
		StartQuarter: e.StartQuarter,
		EndQuarter:   e.EndQuarter,
	}
}

// NewEntry stamps sel with a fresh id and the given time in UTC
func NewEntry(sel filter.Selection, at time.Time) Entry {
	return Entry{
		ID:           uuid.New(),
		Date:         at.UTC().Truncate(time.Millisecond),
		StartQuarter: sel.StartQuarter,
		EndQuarter:   sel.EndQuarter,
		HouseTypes:   append([]housetype.Code(nil), sel.HouseTypes...),
	}
}

// ListInput bounds a history listing
type ListInput struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=500"`
}

// Limits for ListInput
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Clamp returns a usable limit
func (in ListInput) Clamp() int {
	switch {
	case in.Limit <= 0:
		return DefaultLimit
	case in.Limit > MaxLimit:
		return MaxLimit
	}
	return in.Limit
}
