package query

import (
	"strings"
)

// Operator is the operator used for filtering the query.
type Operator struct {
	// Name is the human readable filter operator name.
	Name string
	// Value is the operator raw value.
	Value string
	// Suffix is the field name suffix that marks the operator in the query parameters,
	// i.e. 'name__ilike'. The equal operator has no suffix.
	Suffix string
}

// String implements fmt.Stringer interface.
func (o *Operator) String() string {
	return o.Name
}

// IsMultiValue checks if the operator accepts a list of values.
func (o *Operator) IsMultiValue() bool {
	return o == OpIn || o == OpNotIn
}

// Logical Operators
var (
	OpEqual        = &Operator{Value: "=", Name: "Equal"}
	OpNotEqual     = &Operator{Value: "!=", Suffix: "__ne", Name: "NotEqual"}
	OpIn           = &Operator{Value: "in", Suffix: "__in", Name: "In"}
	OpNotIn        = &Operator{Value: "not in", Suffix: "__not_in", Name: "NotIn"}
	OpGreaterThan  = &Operator{Value: ">", Suffix: "__gt", Name: "GreaterThan"}
	OpGreaterEqual = &Operator{Value: ">=", Suffix: "__gte", Name: "GreaterThanOrEqualTo"}
	OpLessThan     = &Operator{Value: "<", Suffix: "__lt", Name: "LessThan"}
	OpLessEqual    = &Operator{Value: "<=", Suffix: "__lte", Name: "LessThanOrEqualTo"}
)

// Strings Only operators.
var (
	OpContains = &Operator{Value: "contains", Suffix: "__ilike", Name: "Contains"}
)

// Null and Existence operators.
var (
	OpIsNull = &Operator{Value: "is null", Suffix: "__isnull", Name: "IsNull"}
)

var defaultOperators = []*Operator{
	OpEqual,
	OpNotEqual,
	OpIn,
	OpNotIn,
	OpGreaterThan,
	OpGreaterEqual,
	OpLessThan,
	OpLessEqual,
	OpContains,
	OpIsNull,
}

// splitOperator splits the 'key' into the field name and the operator matched by its suffix.
func splitOperator(key string) (string, *Operator) {
	for _, op := range defaultOperators {
		if op.Suffix != "" && strings.HasSuffix(key, op.Suffix) {
			return strings.TrimSuffix(key, op.Suffix), op
		}
	}
	if i := strings.Index(key, "__"); i != -1 {
		return key[:i], nil
	}
	return key, OpEqual
}
