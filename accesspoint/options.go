package accesspoint

import (
	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/log"
)

// Option is the function that sets up the access point.
type Option func(a *AccessPoint)

// WithService registers the service 'svc' for the resource 'kind'.
func WithService(kind entity.Kind, svc entity.Service) Option {
	return func(a *AccessPoint) {
		if svc == nil {
			delete(a.services, kind)
			return
		}
		a.services[kind] = svc
	}
}

// WithProvider registers the services of the provider 'p' for all the resource kinds.
func WithProvider(p entity.Provider) Option {
	return func(a *AccessPoint) {
		for _, kind := range entity.Kinds {
			if svc := p.Service(kind); svc != nil {
				a.services[kind] = svc
			}
		}
	}
}

// WithLogger sets the module logger used to report failed calls.
func WithLogger(l *log.ModuleLogger) Option {
	return func(a *AccessPoint) {
		if l != nil {
			a.log = l
		}
	}
}
