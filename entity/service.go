package entity

import (
	"context"

	"github.com/neuronlabs/emodel/query"
)

// Search is the full text search request of the list operation.
type Search struct {
	Text string
}

// Facets are the names of the fields the service should compute the facets for.
type Facets []string

// Service is the entity service contract for a single resource kind.
type Service interface {
	// ReadOne reads the resource with given 'id'.
	ReadOne(ctx context.Context, userCtx UserContext, db Session, id ID) (*Record, error)
	// ReadMany reads the resources that matches the filter 'f' within the pagination 'p'.
	// Optional 'withSearch' and 'facets' extends the listing with the full text search and facets.
	ReadMany(ctx context.Context, userCtx UserContext, db Session, p *query.Pagination, f *query.Filter, withSearch *Search, facets Facets) ([]*Record, error)
}

// Provider provides the services for the resource kinds.
type Provider interface {
	Service(kind Kind) Service
}
