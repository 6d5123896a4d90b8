package sqlservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/namer"
	"github.com/neuronlabs/emodel/query"
)

const selectColumns = `SELECT id, name, description, creation_date, authorized_public, authorized_project_id, attributes FROM entity`

// columns are the filter fields stored in their own columns.
var columns = map[string]string{
	"id":            "id",
	"name":          "name",
	"description":   "description",
	"creation_date": "creation_date",
}

var _ entity.Provider = &Provider{}

// Provider is the provider of the SQL services.
type Provider struct {
	services map[entity.Kind]*Service
}

// New creates the provider with the services for all the resource kinds.
func New() *Provider {
	p := &Provider{services: map[entity.Kind]*Service{}}
	for _, kind := range entity.Kinds {
		p.services[kind] = &Service{kind: kind}
	}
	return p
}

// Service implements entity.Provider interface.
func (p *Provider) Service(kind entity.Kind) entity.Service {
	s, ok := p.services[kind]
	if !ok {
		return nil
	}
	return s
}

var _ entity.Service = &Service{}

// Service is the SQL service of a single resource kind.
type Service struct {
	kind entity.Kind
}

// ReadOne implements entity.Service interface.
func (s *Service) ReadOne(ctx context.Context, userCtx entity.UserContext, db entity.Session, id entity.ID) (*entity.Record, error) {
	q, err := querier(db)
	if err != nil {
		return nil, err
	}
	if err = checkID(id); err != nil {
		return nil, err
	}

	row := q.QueryRowContext(ctx, selectColumns+` WHERE id = ? AND kind = ?`, string(id), s.kind.ServiceName())
	record, auth, err := s.scan(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewDetf(entity.ClassNotFound, "%s: '%s' not found", s.kind, id)
	}
	if err != nil {
		return nil, s.queryError(ctx, err)
	}
	if !visible(auth, projectOf(userCtx)) {
		return nil, errors.NewDetf(entity.ClassDenied, "%s: '%s' is not accessible", s.kind, id)
	}
	return record, nil
}

// ReadMany implements entity.Service interface. The records are ordered by the
// creation date, newest first. Facets are not computed.
func (s *Service) ReadMany(ctx context.Context, userCtx entity.UserContext, db entity.Session, p *query.Pagination, f *query.Filter, withSearch *entity.Search, facets entity.Facets) ([]*entity.Record, error) {
	q, err := querier(db)
	if err != nil {
		return nil, err
	}
	if err = p.IsValid(); err != nil {
		return nil, err
	}
	if err = f.IsValid(); err != nil {
		return nil, err
	}

	b := &builder{}
	b.where("kind = ?", s.kind.ServiceName())
	if projectID := projectOf(userCtx); projectID != "" {
		b.where("(authorized_public = 1 OR authorized_project_id = ?)", projectID)
	} else {
		b.where("authorized_public = 1")
	}
	if f != nil {
		for _, simple := range f.Simples {
			if err = b.filter(simple); err != nil {
				return nil, err
			}
		}
	}
	if withSearch != nil && withSearch.Text != "" {
		pattern := "%" + withSearch.Text + "%"
		b.where("(name LIKE ? OR description LIKE ?)", pattern, pattern)
	}
	if facets != nil {
		logger.Debugf("Facets are not supported, ignoring: %v", facets)
	}

	stmt := selectColumns + b.whereClause() + ` ORDER BY creation_date DESC, id ASC`
	if p != nil {
		limit, offset := p.GetLimitOffset()
		if limit == 0 {
			limit = -1
		}
		stmt += ` LIMIT ? OFFSET ?`
		b.args = append(b.args, limit, offset)
	}

	logger.Debugf("%s %v", stmt, b.args)
	rows, err := q.QueryContext(ctx, stmt, b.args...)
	if err != nil {
		return nil, s.queryError(ctx, err)
	}
	defer rows.Close()

	records := []*entity.Record{}
	for rows.Next() {
		record, _, err := s.scan(rows)
		if err != nil {
			return nil, s.queryError(ctx, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, s.queryError(ctx, err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (s *Service) scan(row scanner) (*entity.Record, Authorization, error) {
	var (
		id, name, description, creationDate, attributes string
		auth                                            Authorization
		projectID                                       sql.NullString
	)
	if err := row.Scan(&id, &name, &description, &creationDate, &auth.Public, &projectID, &attributes); err != nil {
		return nil, auth, err
	}
	auth.ProjectID = projectID.String

	record := &entity.Record{ID: entity.ID(id), Kind: s.kind, Name: name, Description: description}
	t, err := time.Parse(time.RFC3339Nano, creationDate)
	if err != nil {
		return nil, auth, errors.Wrapf(entity.ClassMalformedResponse, err, "invalid %s creation date", s.kind)
	}
	record.CreationDate = t

	if attributes != "" {
		attrs := map[string]interface{}{}
		if err = json.Unmarshal([]byte(attributes), &attrs); err != nil {
			return nil, auth, errors.Wrapf(entity.ClassMalformedResponse, err, "invalid %s attributes", s.kind)
		}
		if len(attrs) > 0 {
			record.Attributes = attrs
		}
	}
	return record, auth, nil
}

func (s *Service) queryError(ctx context.Context, err error) error {
	if errors.IsMajor(err, entity.MjrEntity) {
		return err
	}
	if ctx.Err() != nil {
		return errors.Wrapf(entity.ClassUnavailable, err, "querying %s canceled", s.kind)
	}
	return errors.Wrapf(errors.ClassInternal, err, "querying %s failed", s.kind)
}

func querier(db entity.Session) (Querier, error) {
	q, ok := db.(Querier)
	if !ok || q == nil {
		return nil, errors.NewDetf(entity.ClassInvalidSession, "session: '%T' is not a sql querier", db)
	}
	return q, nil
}

func checkID(id entity.ID) error {
	if _, err := uuid.Parse(string(id)); err != nil {
		return errors.NewDetf(errors.ClassInvalidArgument, "invalid id: '%s'", id)
	}
	return nil
}

func projectOf(userCtx entity.UserContext) string {
	creds, ok := userCtx.(entity.Credentials)
	if !ok {
		return ""
	}
	_, projectID := creds.Scope()
	return projectID
}

func visible(auth Authorization, projectID string) bool {
	return auth.Public || (projectID != "" && auth.ProjectID == projectID)
}

type builder struct {
	conditions []string
	args       []interface{}
}

func (b *builder) where(condition string, args ...interface{}) {
	b.conditions = append(b.conditions, condition)
	b.args = append(b.args, args...)
}

func (b *builder) whereClause() string {
	if len(b.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conditions, " AND ")
}

func (b *builder) filter(s query.Simple) error {
	field := namer.NamingSnake(s.Field)
	column, ok := columns[field]
	if !ok {
		if !namer.IsSnake(field) {
			return errors.NewDetf(query.ClassInvalidFilter, "invalid filter field: '%s'", s.Field)
		}
		column = "json_extract(attributes, '$." + field + "')"
	}

	values := make([]interface{}, len(s.Values))
	for i, v := range s.Values {
		values[i] = sqlValue(field, v)
		if !ok && s.Operator != query.OpContains && s.Operator != query.OpIsNull {
			values[i] = attributeValue(values[i])
		}
	}

	switch s.Operator {
	case query.OpEqual:
		b.where(column+" = ?", values[0])
	case query.OpNotEqual:
		b.where(column+" <> ?", values[0])
	case query.OpGreaterThan:
		b.where(column+" > ?", values[0])
	case query.OpGreaterEqual:
		b.where(column+" >= ?", values[0])
	case query.OpLessThan:
		b.where(column+" < ?", values[0])
	case query.OpLessEqual:
		b.where(column+" <= ?", values[0])
	case query.OpIn, query.OpNotIn:
		in := " IN ("
		if s.Operator == query.OpNotIn {
			in = " NOT IN ("
		}
		b.where(column+in+strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")+")", values...)
	case query.OpContains:
		b.where(column+" LIKE ?", "%"+query.FormatValue(values[0])+"%")
	case query.OpIsNull:
		isNull := true
		if len(values) == 1 {
			isNull = query.FormatValue(values[0]) != "false"
		}
		if isNull {
			b.where(column + " IS NULL")
		} else {
			b.where(column + " IS NOT NULL")
		}
	default:
		return errors.NewDetf(query.ClassInvalidOperator, "unsupported filter operator: '%s'", s.Operator)
	}
	return nil
}

// sqlValue converts the filter value into the sql argument. Creation dates are
// formatted the way they are stored.
func sqlValue(field string, v interface{}) interface{} {
	switch tv := v.(type) {
	case time.Time:
		return formatTime(tv)
	case *time.Time:
		if tv == nil {
			return nil
		}
		return formatTime(*tv)
	case string:
		if field == "creation_date" {
			if t, err := time.Parse(time.RFC3339Nano, tv); err == nil {
				return formatTime(t)
			}
		}
		return tv
	case bool, int, int64, float64:
		return tv
	default:
		return query.FormatValue(tv)
	}
}

// attributeValue converts the textual numbers and booleans into the values
// json_extract returns for the JSON numbers and booleans. SQLite orders every
// number before any text so the comparison must not mix them.
func attributeValue(v interface{}) interface{} {
	tv, ok := v.(string)
	if !ok {
		return v
	}
	switch tv {
	case "true":
		return 1
	case "false":
		return 0
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(tv), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return tv
}
