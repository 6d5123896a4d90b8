package httpservice

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/neuronlabs/emodel/config"
	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/log"
)

var logger = log.NewModuleLogger("httpservice")

// DefaultTimeout is the timeout of the default client when the connection doesn't define one.
const DefaultTimeout = 30 * time.Second

// Doer is the interface implemented by the HTTP clients.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ entity.Provider = &Provider{}

// Provider is the provider of the EntityCore REST services.
type Provider struct {
	base     *url.URL
	client   Doer
	services map[entity.Kind]*Service
}

// New creates the provider for the connection 'conn'.
func New(conn *config.Connection) (*Provider, error) {
	if err := conn.Validate(); err != nil {
		return nil, err
	}
	base, err := conn.URL()
	if err != nil {
		return nil, err
	}
	timeout := DefaultTimeout
	if conn.MaxTimeout != nil {
		timeout = *conn.MaxTimeout
	}
	return NewWithClient(base, &http.Client{Timeout: timeout}), nil
}

// NewWithClient creates the provider for the 'base' url with the default 'client'.
func NewWithClient(base *url.URL, client Doer) *Provider {
	b := *base
	b.Path = strings.TrimSuffix(b.Path, "/")

	p := &Provider{base: &b, client: client, services: map[entity.Kind]*Service{}}
	for _, kind := range entity.Kinds {
		p.services[kind] = &Service{kind: kind, provider: p}
	}
	logger.Debugf("EntityCore REST provider for: %s", p.base)
	return p
}

// Base gets the base url of the provider.
func (p *Provider) Base() *url.URL {
	b := *p.base
	return &b
}

// Service implements entity.Provider interface.
func (p *Provider) Service(kind entity.Kind) entity.Service {
	s, ok := p.services[kind]
	if !ok {
		return nil
	}
	return s
}

func (p *Provider) doer(db entity.Session) Doer {
	if d, ok := db.(Doer); ok && d != nil {
		return d
	}
	return p.client
}

// endpoint joins the kind route and the 'segments' to the base url.
// Each segment is path escaped so that it can't leave the kind route.
func (p *Provider) endpoint(kind entity.Kind, segments ...string) *url.URL {
	u := *p.base
	path, rawPath := u.Path, u.EscapedPath()
	for _, segment := range append([]string{kind.Route()}, segments...) {
		path += "/" + segment
		rawPath += "/" + url.PathEscape(segment)
	}
	u.Path, u.RawPath = path, rawPath
	return &u
}
