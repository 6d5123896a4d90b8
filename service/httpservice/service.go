package httpservice

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/query"
)

// Headers used by the EntityCore REST API.
const (
	HeaderAuthorization = "Authorization"
	HeaderVirtualLabID  = "virtual-lab-id"
	HeaderProjectID     = "project-id"
)

// Query parameters used by the EntityCore REST API.
const (
	ParamSearch     = "search"
	ParamWithFacets = "with_facets"
)

const maxErrorBody = 512

var _ entity.Service = &Service{}

// Service is the EntityCore REST service of a single resource kind.
type Service struct {
	kind     entity.Kind
	provider *Provider
}

// Kind gets the resource kind of the service.
func (s *Service) Kind() entity.Kind {
	return s.kind
}

// ReadOne implements entity.Service interface.
func (s *Service) ReadOne(ctx context.Context, userCtx entity.UserContext, db entity.Session, id entity.ID) (*entity.Record, error) {
	switch id {
	case "":
		return nil, errors.NewDetf(errors.ClassInvalidArgument, "empty %s id", s.kind)
	case ".", "..":
		return nil, errors.NewDetf(errors.ClassInvalidArgument, "invalid %s id: '%s'", s.kind, id)
	}
	u := s.provider.endpoint(s.kind, string(id))

	record := &entity.Record{}
	if err := s.get(ctx, userCtx, db, u, record); err != nil {
		return nil, err
	}
	record.Kind = s.kind
	return record, nil
}

type listResponse struct {
	Data       []*entity.Record       `json:"data"`
	Pagination map[string]interface{} `json:"pagination"`
	Facets     map[string]interface{} `json:"facets"`
}

// ReadMany implements entity.Service interface.
func (s *Service) ReadMany(ctx context.Context, userCtx entity.UserContext, db entity.Session, p *query.Pagination, f *query.Filter, withSearch *entity.Search, facets entity.Facets) ([]*entity.Record, error) {
	if err := p.IsValid(); err != nil {
		return nil, err
	}
	if err := f.IsValid(); err != nil {
		return nil, err
	}

	q := p.FormatQuery()
	f.FormatQuery(q)
	if withSearch != nil && withSearch.Text != "" {
		q.Set(ParamSearch, withSearch.Text)
	}
	if facets != nil {
		q.Set(ParamWithFacets, "true")
	}

	u := s.provider.endpoint(s.kind)
	u.RawQuery = q.Encode()

	resp := &listResponse{}
	if err := s.get(ctx, userCtx, db, u, resp); err != nil {
		return nil, err
	}
	records := make([]*entity.Record, 0, len(resp.Data))
	for _, record := range resp.Data {
		if record == nil {
			continue
		}
		record.Kind = s.kind
		records = append(records, record)
	}
	return records, nil
}

func (s *Service) get(ctx context.Context, userCtx entity.UserContext, db entity.Session, u *url.URL, dst interface{}) error {
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Wrapf(errors.ClassInvalidArgument, err, "invalid %s request", s.kind)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	setCredentials(req, userCtx)

	logger.Debugf("GET %s", u)
	resp, err := s.provider.doer(db).Do(req)
	if err != nil {
		return errors.Wrapf(entity.ClassUnavailable, err, "requesting %s failed", s.kind)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, u)
	}
	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.Wrapf(entity.ClassMalformedResponse, err, "decoding %s response failed", s.kind)
	}
	return nil
}

func setCredentials(req *http.Request, userCtx entity.UserContext) {
	creds, ok := userCtx.(entity.Credentials)
	if !ok {
		return
	}
	if token := creds.BearerToken(); token != "" {
		req.Header.Set(HeaderAuthorization, "Bearer "+token)
	}
	virtualLabID, projectID := creds.Scope()
	if virtualLabID != "" {
		req.Header.Set(HeaderVirtualLabID, virtualLabID)
	}
	if projectID != "" {
		req.Header.Set(HeaderProjectID, projectID)
	}
}

func statusError(resp *http.Response, u *url.URL) error {
	body, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	var c errors.Class
	switch {
	case resp.StatusCode == http.StatusNotFound:
		c = entity.ClassNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		c = entity.ClassDenied
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		c = errors.ClassInvalidArgument
	case resp.StatusCode >= 500:
		c = entity.ClassUnavailable
	default:
		c = errors.ClassInternal
	}
	return errors.NewDetf(c, "%d %s", resp.StatusCode, message).WithDetailf("GET %s", u)
}
