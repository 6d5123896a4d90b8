package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/emodel/errors"
)

// TestPaginationFormatQuery tests the Pagination.FormatQuery method.
func TestPaginationFormatQuery(t *testing.T) {
	t.Run("Paged", func(t *testing.T) {
		p := Page(2, 10)
		require.NoError(t, p.IsValid())

		q := url.Values{}
		p.FormatQuery(q)
		require.Len(t, q, 2)

		assert.Equal(t, "10", q.Get(ParamPageSize))
		assert.Equal(t, "2", q.Get(ParamPage))
	})

	t.Run("Limited", func(t *testing.T) {
		p := LimitOffset(10, 0)
		require.NoError(t, p.IsValid())

		q := p.FormatQuery()
		require.Len(t, q, 2)
		assert.Equal(t, "10", q.Get(ParamPageSize))
		assert.Equal(t, "1", q.Get(ParamPage))
	})

	t.Run("LimitOffset", func(t *testing.T) {
		p := LimitOffset(10, 140)
		require.NoError(t, p.IsValid())

		q := p.FormatQuery()
		assert.Equal(t, "10", q.Get(ParamPageSize))
		assert.Equal(t, "15", q.Get(ParamPage))
	})

	t.Run("Nil", func(t *testing.T) {
		var p *Pagination
		require.NoError(t, p.IsValid())
		assert.Empty(t, p.FormatQuery())
	})
}

// TestPaginationIsValid tests the pagination validation.
func TestPaginationIsValid(t *testing.T) {
	tests := map[string]*Pagination{
		"NegativeSize":   {Size: -1, Type: PageNumberPagination},
		"NegativeOffset": {Offset: -3},
		"UnknownType":    {Size: 1, Type: PaginationType(5)},
		"NoLimit":        LimitOffset(0, 10),
		"NotAligned":     LimitOffset(10, 15),
	}
	for name, p := range tests {
		t.Run(name, func(t *testing.T) {
			err := p.IsValid()
			require.Error(t, err)
			assert.True(t, errors.IsClass(err, ClassInvalidPagination))
		})
	}
}

// TestPaginationConversions tests converting between the pagination types.
func TestPaginationConversions(t *testing.T) {
	limit, offset := Page(3, 20).GetLimitOffset()
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, offset)

	limit, offset = Page(0, 20).GetLimitOffset()
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	number, size := LimitOffset(25, 50).GetNumberSize()
	assert.Equal(t, 3, number)
	assert.Equal(t, 25, size)

	assert.Equal(t, "page: 3, page_size: 20", Page(3, 20).String())
	assert.Equal(t, "limit: 25, offset: 50", LimitOffset(25, 50).String())
}
