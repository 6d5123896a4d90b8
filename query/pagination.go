package query

import (
	"fmt"
	"net/url"
	"strconv"

	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/emodel/errors"
)

// Pagination constants
const (
	// ParamPage is the query parameter with the page number.
	ParamPage = "page"
	// ParamPageSize is the query parameter with the page size.
	ParamPageSize = "page_size"
)

// PaginationType defines the pagination type.
type PaginationType int

const (
	// LimitOffsetPagination is the pagination type that defines limit or (and) offset.
	LimitOffsetPagination PaginationType = iota
	// PageNumberPagination is the pagination type that uses page type pagination i.e. page=1 page size = 10.
	PageNumberPagination
)

// String implements fmt.Stringer interface.
func (p PaginationType) String() string {
	switch p {
	case LimitOffsetPagination:
		return "LimitOffset"
	case PageNumberPagination:
		return "PageNumber"
	default:
		return "Unknown"
	}
}

var validate = validator.New()

// Pagination defines the query limits and offsets.
// It defines the maximum size (Limit) as well as an offset at which the query should start.
// For the PageNumberPagination the Offset is the page number, starting at 1.
type Pagination struct {
	// Size is a pagination value that defines 'limit' or 'page size'.
	Size int `validate:"gte=0"`
	// Offset is a pagination value that defines 'offset' or 'page number'.
	Offset int `validate:"gte=0"`
	// Type is the pagination type.
	Type PaginationType `validate:"gte=0,lte=1"`
}

// LimitOffset creates new limit, offset type pagination.
func LimitOffset(limit, offset int) *Pagination {
	return &Pagination{Size: limit, Offset: offset, Type: LimitOffsetPagination}
}

// Page creates new page number type pagination.
func Page(number, size int) *Pagination {
	return &Pagination{Size: size, Offset: number, Type: PageNumberPagination}
}

// IsValid checks if the pagination is well formed.
// A limit offset pagination must have its offset aligned to the page size so
// that it could be expressed as a page number.
func (p *Pagination) IsValid() error {
	if p == nil {
		return nil
	}
	if err := validate.Struct(p); err != nil {
		return errors.Wrapf(ClassInvalidPagination, err, "invalid pagination: '%s'", p)
	}
	if p.Type == LimitOffsetPagination && p.Offset != 0 {
		if p.Size == 0 {
			return errors.NewDetf(ClassInvalidPagination, "pagination offset: '%d' requires the limit", p.Offset)
		}
		if p.Offset%p.Size != 0 {
			return errors.NewDetf(ClassInvalidPagination, "pagination offset: '%d' is not a multiple of the limit: '%d'", p.Offset, p.Size)
		}
	}
	return nil
}

// GetNumberSize gets the page number and page size from the pagination.
// Zero values mean that the value was not defined.
func (p *Pagination) GetNumberSize() (number, size int) {
	if p.Type == PageNumberPagination {
		return p.Offset, p.Size
	}
	if p.Size == 0 {
		return 0, 0
	}
	return p.Offset/p.Size + 1, p.Size
}

// GetLimitOffset gets the limit and offset from the pagination.
func (p *Pagination) GetLimitOffset() (limit, offset int) {
	if p.Type == LimitOffsetPagination {
		return p.Size, p.Offset
	}
	if p.Offset <= 1 {
		return p.Size, 0
	}
	return p.Size, (p.Offset - 1) * p.Size
}

// FormatQuery formats the pagination for the url query.
func (p *Pagination) FormatQuery(q ...url.Values) url.Values {
	var query url.Values
	if len(q) != 0 {
		query = q[0]
	}
	if query == nil {
		query = url.Values{}
	}
	if p == nil {
		return query
	}

	number, size := p.GetNumberSize()
	if number != 0 {
		query.Set(ParamPage, strconv.Itoa(number))
	}
	if size != 0 {
		query.Set(ParamPageSize, strconv.Itoa(size))
	}
	return query
}

// String implements fmt.Stringer interface.
func (p *Pagination) String() string {
	if p == nil {
		return "<nil>"
	}
	switch p.Type {
	case PageNumberPagination:
		return fmt.Sprintf("page: %d, page_size: %d", p.Offset, p.Size)
	default:
		return fmt.Sprintf("limit: %d, offset: %d", p.Size, p.Offset)
	}
}
