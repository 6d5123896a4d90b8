package query

import (
	"github.com/neuronlabs/emodel/errors"
)

var (
	// MjrQuery is the major error classification for the query package.
	MjrQuery errors.Major

	// ClassInvalidPagination is the error classification for the invalid pagination descriptor.
	ClassInvalidPagination errors.Class
	// ClassInvalidFilter is the error classification for the invalid filter descriptor.
	ClassInvalidFilter errors.Class
	// ClassInvalidOperator is the error classification for an unknown filter operator.
	ClassInvalidOperator errors.Class
)

func init() {
	MjrQuery = errors.MustNewMajor()

	ClassInvalidPagination = errors.MustNewMajorClass(MjrQuery)
	ClassInvalidFilter = errors.MustNewMajorClass(MjrQuery)
	ClassInvalidOperator = errors.MustNewMinorClass(MjrQuery, ClassInvalidFilter.Minor())
}
