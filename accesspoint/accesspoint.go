package accesspoint

import (
	"context"

	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/log"
	"github.com/neuronlabs/emodel/query"
)

var logger = log.NewModuleLogger("accesspoint")

// AccessPoint is the access to the emodel related resources stored in the entity service.
// It is safe for the concurrent use as long as its session and services are.
type AccessPoint struct {
	session  entity.Session
	services map[entity.Kind]entity.Service
	log      *log.ModuleLogger
}

// New creates the access point that forwards the 'session' to each service call.
func New(session entity.Session, options ...Option) *AccessPoint {
	a := &AccessPoint{
		session:  session,
		services: map[entity.Kind]entity.Service{},
		log:      logger,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Fetch reads the resource of given 'kind' and 'id'. It never fails, the failure is
// logged and described by the result's Outcome.
func (a *AccessPoint) Fetch(ctx context.Context, kind entity.Kind, id entity.ID, userCtx entity.UserContext) Result {
	record, err := a.readOne(ctx, kind, id, userCtx)
	if err != nil {
		a.log.Errorf("Failed to fetch %s %s from EntityCore: %v", kind, id, err)
		return Result{Outcome: outcomeOf(err), Err: err}
	}
	return Result{Record: record, Outcome: Success}
}

// List reads the resources of given 'kind' matching the filter 'f' within the pagination 'p'.
// The full text search and facets are never requested. It never fails, on failure
// the result contains an empty list and the Outcome describing the failure.
func (a *AccessPoint) List(ctx context.Context, kind entity.Kind, p *query.Pagination, f *query.Filter, userCtx entity.UserContext) ListResult {
	records, err := a.readMany(ctx, kind, p, f, userCtx)
	if err != nil {
		a.log.Errorf("Failed to fetch %s from EntityCore: %v", kind.Plural(), err)
		return ListResult{Records: []*entity.Record{}, Outcome: outcomeOf(err), Err: err}
	}
	return ListResult{Records: records, Outcome: Success}
}

func (a *AccessPoint) readOne(ctx context.Context, kind entity.Kind, id entity.ID, userCtx entity.UserContext) (record *entity.Record, err error) {
	svc, err := a.service(kind)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			record, err = nil, errors.NewDetf(ClassServicePanic, "%s service panicked: %v", kind, r)
		}
	}()
	return svc.ReadOne(contextOrBackground(ctx), userCtx, a.session, id)
}

func (a *AccessPoint) readMany(ctx context.Context, kind entity.Kind, p *query.Pagination, f *query.Filter, userCtx entity.UserContext) (records []*entity.Record, err error) {
	svc, err := a.service(kind)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			records, err = nil, errors.NewDetf(ClassServicePanic, "%s service panicked: %v", kind, r)
		}
	}()
	return svc.ReadMany(contextOrBackground(ctx), userCtx, a.session, p, f, nil, nil)
}

func (a *AccessPoint) service(kind entity.Kind) (entity.Service, error) {
	svc, ok := a.services[kind]
	if !ok {
		return nil, errors.NewDetf(ClassNoService, "no service registered for the resource kind: '%s'", kind)
	}
	return svc, nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
