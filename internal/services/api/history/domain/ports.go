package domain

import (
	"context"

	"housepricing/internal/core/filter"
)

// ServicePort is the history contract other modules and transports use
type ServicePort interface {
	// List returns up to limit of the newest entries, oldest first. Storage
	// failures degrade to an empty list
	List(ctx context.Context, in ListInput) []Entry

	// Append records sel. Storage failures return PersistenceUnavailable
	Append(ctx context.Context, sel filter.Selection) (Entry, error)
}
