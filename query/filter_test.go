package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/emodel/errors"
)

// TestParseFilter tests parsing the filter expressions.
func TestParseFilter(t *testing.T) {
	type testcase struct {
		name string
		expr string
		tf   func(t *testing.T, s Simple, err error)
	}

	tests := []testcase{
		{"Equal", "name=L5_TPC", func(t *testing.T, s Simple, err error) {
			require.NoError(t, err)
			assert.Equal(t, "name", s.Field)
			assert.Equal(t, OpEqual, s.Operator)
			assert.Equal(t, []interface{}{"L5_TPC"}, s.Values)
		}},
		{"Contains", "name__ilike=TPC", func(t *testing.T, s Simple, err error) {
			require.NoError(t, err)
			assert.Equal(t, OpContains, s.Operator)
		}},
		{"In", "etype__in=cADpyr, bAC", func(t *testing.T, s Simple, err error) {
			require.NoError(t, err)
			assert.Equal(t, OpIn, s.Operator)
			assert.Equal(t, []interface{}{"cADpyr", "bAC"}, s.Values)
		}},
		{"NotIn", "etype__not_in=bAC", func(t *testing.T, s Simple, err error) {
			require.NoError(t, err)
			assert.Equal(t, OpNotIn, s.Operator)
			assert.Equal(t, "etype", s.Field)
		}},
		{"GreaterEqual", "creation_date__gte=2024-01-01T00:00:00Z", func(t *testing.T, s Simple, err error) {
			require.NoError(t, err)
			assert.Equal(t, OpGreaterEqual, s.Operator)
			assert.Equal(t, "creation_date", s.Field)
		}},
		{"NoEqualSign", "name", func(t *testing.T, s Simple, err error) {
			require.Error(t, err)
			assert.True(t, errors.IsClass(err, ClassInvalidFilter))
		}},
		{"UnknownOperator", "name__like=x", func(t *testing.T, s Simple, err error) {
			require.Error(t, err)
			assert.True(t, errors.IsClass(err, ClassInvalidOperator))
		}},
		{"InvalidField", "na me=x", func(t *testing.T, s Simple, err error) {
			require.Error(t, err)
			assert.True(t, errors.IsClass(err, ClassInvalidFilter))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseFilter(tc.expr)
			tc.tf(t, s, err)
		})
	}
}

// TestFilterFormatQuery tests formatting the filter into the url query.
func TestFilterFormatQuery(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := NewFilter().
		Where("name", OpContains, "TPC").
		Where("eType", OpIn, "cADpyr", "bAC").
		Where("creationDate", OpGreaterEqual, created).
		Where("score", OpLessThan, 0.5).
		Where("brainRegion", OpIsNull)

	require.NoError(t, f.IsValid())
	assert.Equal(t, 5, f.Len())

	q := f.FormatQuery(Page(1, 10).FormatQuery())
	assert.Equal(t, "TPC", q.Get("name__ilike"))
	assert.Equal(t, "cADpyr,bAC", q.Get("e_type__in"))
	assert.Equal(t, "2024-03-01T12:00:00Z", q.Get("creation_date__gte"))
	assert.Equal(t, "0.5", q.Get("score__lt"))
	assert.Equal(t, "true", q.Get("brain_region__isnull"))
	assert.Equal(t, "1", q.Get(ParamPage))

	t.Run("Nil", func(t *testing.T) {
		var f *Filter
		assert.Equal(t, 0, f.Len())
		assert.NoError(t, f.IsValid())
		assert.Empty(t, f.FormatQuery())
		assert.Equal(t, "<all>", f.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		err := NewFilter().Where("name", OpEqual).IsValid()
		assert.True(t, errors.IsClass(err, ClassInvalidFilter))

		err = NewFilter().Where("name", nil, "x").IsValid()
		assert.True(t, errors.IsClass(err, ClassInvalidOperator))

		err = NewFilter().Where("etype", OpIn).IsValid()
		assert.True(t, errors.IsClass(err, ClassInvalidFilter))
	})
}
