package domain

import (
	"context"

	"housepricing/internal/adapters/ssb"
	"housepricing/internal/core/filter"
)

// ServicePort is the price search contract
type ServicePort interface {
	Search(ctx context.Context, sel filter.Selection) (SearchResult, error)
}

// Fetcher posts one table query and returns the raw json-stat2 payload
type Fetcher interface {
	Fetch(ctx context.Context, body ssb.QueryBody) ([]byte, error)
	Table() string
}

// ObservationWriter stores fetched cells
type ObservationWriter interface {
	Write(ctx context.Context, obs []Observation) error
}
