// Package domain holds the price search types shared by repo, service and transport
package domain

import (
	"time"

	"housepricing/internal/core/filter"
	"housepricing/internal/core/housetype"
	"housepricing/internal/core/jsonstat"
)

// SearchResult is a chart-ready answer to one search
type SearchResult struct {
	Datasets []jsonstat.Series `json:"datasets"`
	Labels   []string          `json:"labels"   example:"2009K1,2009K2"`
	// Colors has one rgb() entry per dataset plus a spare
	Colors    []string         `json:"colors"`
	Share     string           `json:"share"    example:"end=2010K1&houseTypes=00%2C02&start=2009K1"`
	Selection filter.Selection `json:"selection"`
	Quarters  []string         `json:"quarters" example:"2009K1,2009K2"`
	// FromURL is set on replays whose query carried a complete selection
	FromURL bool `json:"fromUrl,omitempty"`
}

// Observation is one published price cell
type Observation struct {
	Table     string
	Quarter   string
	HouseType housetype.Code
	Price     float64
	FetchedAt time.Time
}

// Observations flattens g into one row per non-empty cell
func Observations(table string, g jsonstat.GraphData, at time.Time) []Observation {
	var out []Observation
	for _, s := range g.Datasets {
		for i, v := range s.Data {
			if v == nil || i >= len(g.Labels) {
				continue
			}
			out = append(out, Observation{
				Table:     table,
				Quarter:   g.Labels[i],
				HouseType: s.Code,
				Price:     *v,
				FetchedAt: at,
			})
		}
	}
	return out
}
