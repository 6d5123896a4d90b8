package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/namer"
)

// Simple is a single filter criterion: 'field operator values'.
type Simple struct {
	Field    string
	Operator *Operator
	Values   []interface{}
}

// String implements fmt.Stringer interface.
func (f Simple) String() string {
	return fmt.Sprintf("%s %s %v", f.Field, f.Operator.Value, f.Values)
}

// Key gets the query parameter key of the filter i.e. 'creation_date__gte'.
func (f Simple) Key() string {
	return namer.NamingSnake(f.Field) + f.Operator.Suffix
}

// Filter is the resource filter descriptor. It is a conjunction of the simple filters.
// A nil or empty filter matches every resource.
type Filter struct {
	Simples []Simple
}

// NewFilter creates new filter with the provided simple filters.
func NewFilter(simples ...Simple) *Filter {
	return &Filter{Simples: simples}
}

// Where adds new simple filter for the 'field' with the operator 'op' and the 'values'.
func (f *Filter) Where(field string, op *Operator, values ...interface{}) *Filter {
	f.Simples = append(f.Simples, Simple{Field: field, Operator: op, Values: values})
	return f
}

// Len gets the number of the simple filters.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Simples)
}

// IsValid checks if all the simple filters are well formed.
func (f *Filter) IsValid() error {
	if f == nil {
		return nil
	}
	for _, s := range f.Simples {
		if s.Operator == nil {
			return errors.NewDetf(ClassInvalidOperator, "filter on field: '%s' has no operator", s.Field)
		}
		if !namer.IsIdentifier(s.Field) {
			return errors.NewDetf(ClassInvalidFilter, "invalid filter field: '%s'", s.Field)
		}
		switch {
		case s.Operator == OpIsNull:
			if len(s.Values) > 1 {
				return errors.NewDetf(ClassInvalidFilter, "filter: '%s' takes at most one value", s.Key())
			}
		case s.Operator.IsMultiValue():
			if len(s.Values) == 0 {
				return errors.NewDetf(ClassInvalidFilter, "filter: '%s' requires at least one value", s.Key())
			}
		default:
			if len(s.Values) != 1 {
				return errors.NewDetf(ClassInvalidFilter, "filter: '%s' requires exactly one value", s.Key())
			}
		}
	}
	return nil
}

// FormatQuery formats the filter for the url query.
func (f *Filter) FormatQuery(q ...url.Values) url.Values {
	var query url.Values
	if len(q) != 0 {
		query = q[0]
	}
	if query == nil {
		query = url.Values{}
	}
	if f == nil {
		return query
	}

	for _, s := range f.Simples {
		values := make([]string, len(s.Values))
		for i, v := range s.Values {
			values[i] = FormatValue(v)
		}
		if s.Operator == OpIsNull && len(values) == 0 {
			values = append(values, "true")
		}
		query.Set(s.Key(), strings.Join(values, ","))
	}
	return query
}

// String implements fmt.Stringer interface.
func (f *Filter) String() string {
	if f.Len() == 0 {
		return "<all>"
	}
	parts := make([]string, len(f.Simples))
	for i, s := range f.Simples {
		parts[i] = s.String()
	}
	return strings.Join(parts, " AND ")
}

// ParseFilter parses the filter expression in the form 'field[__operator]=value[,value]'.
// I.e.: 'name__ilike=L5', 'creation_date__gte=2024-01-01T00:00:00Z', 'etype__in=cADpyr,bAC'.
func ParseFilter(expr string) (Simple, error) {
	eqSign := strings.IndexRune(expr, '=')
	if eqSign <= 0 {
		return Simple{}, errors.NewDetf(ClassInvalidFilter, "invalid filter expression: '%s' - equal sign not found", expr)
	}
	field, op := splitOperator(strings.TrimSpace(expr[:eqSign]))
	if op == nil {
		return Simple{}, errors.NewDetf(ClassInvalidOperator, "unknown operator in the filter expression: '%s'", expr)
	}
	raw := expr[eqSign+1:]

	s := Simple{Field: field, Operator: op}
	if op.IsMultiValue() {
		for _, v := range strings.Split(raw, ",") {
			s.Values = append(s.Values, strings.TrimSpace(v))
		}
	} else {
		s.Values = []interface{}{raw}
	}
	if err := (&Filter{Simples: []Simple{s}}).IsValid(); err != nil {
		return Simple{}, err
	}
	return s, nil
}

// FormatValue formats the filter value for the url query.
func FormatValue(v interface{}) string {
	switch tv := v.(type) {
	case string:
		return tv
	case time.Time:
		return tv.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if tv == nil {
			return ""
		}
		return tv.UTC().Format(time.RFC3339Nano)
	case bool:
		return strconv.FormatBool(tv)
	case fmt.Stringer:
		return tv.String()
	default:
		return fmt.Sprint(tv)
	}
}
