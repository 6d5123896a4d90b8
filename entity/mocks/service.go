package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/query"
)

var _ entity.Service = &Service{}

// Service is the entity.Service mock implementation.
type Service struct {
	mock.Mock
}

// ReadOne implements entity.Service interface.
func (s *Service) ReadOne(ctx context.Context, userCtx entity.UserContext, db entity.Session, id entity.ID) (*entity.Record, error) {
	args := s.Called(ctx, userCtx, db, id)

	var record *entity.Record
	if v := args.Get(0); v != nil {
		record = v.(*entity.Record)
	}
	return record, args.Error(1)
}

// ReadMany implements entity.Service interface.
func (s *Service) ReadMany(ctx context.Context, userCtx entity.UserContext, db entity.Session, p *query.Pagination, f *query.Filter, withSearch *entity.Search, facets entity.Facets) ([]*entity.Record, error) {
	args := s.Called(ctx, userCtx, db, p, f, withSearch, facets)

	var records []*entity.Record
	if v := args.Get(0); v != nil {
		records = v.([]*entity.Record)
	}
	return records, args.Error(1)
}

// Provider is the entity.Provider mock that returns the same service for each kind.
type Provider struct {
	Services map[entity.Kind]*Service
}

// NewProvider creates a provider with a fresh mock service for each kind.
func NewProvider() *Provider {
	p := &Provider{Services: map[entity.Kind]*Service{}}
	for _, k := range entity.Kinds {
		p.Services[k] = &Service{}
	}
	return p
}

// Service implements entity.Provider interface.
func (p *Provider) Service(kind entity.Kind) entity.Service {
	s, ok := p.Services[kind]
	if !ok {
		return nil
	}
	return s
}
