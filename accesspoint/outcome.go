package accesspoint

import (
	"context"
	stderrors "errors"

	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/query"
)

// Outcome is the kind of the access point call result.
type Outcome int

// Outcomes of the access point calls.
const (
	Success Outcome = iota
	NotFound
	Denied
	Unavailable
	Invalid
	Failed
)

var outcomeNames = map[Outcome]string{
	Success:     "success",
	NotFound:    "not found",
	Denied:      "denied",
	Unavailable: "unavailable",
	Invalid:     "invalid",
	Failed:      "failed",
}

// String implements fmt.Stringer interface.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Result is the outcome of the single resource read.
type Result struct {
	Record  *entity.Record
	Outcome Outcome
	Err     error
}

// OK checks if the read succeeded.
func (r Result) OK() bool {
	return r.Outcome == Success
}

// ListResult is the outcome of the resources listing.
type ListResult struct {
	Records []*entity.Record
	Outcome Outcome
	Err     error
}

// OK checks if the listing succeeded.
func (r ListResult) OK() bool {
	return r.Outcome == Success
}

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Success
	case errors.IsClass(err, entity.ClassNotFound):
		return NotFound
	case errors.IsClass(err, entity.ClassDenied):
		return Denied
	case errors.IsClass(err, entity.ClassUnavailable),
		stderrors.Is(err, context.DeadlineExceeded),
		stderrors.Is(err, context.Canceled):
		return Unavailable
	case errors.IsClass(err, errors.ClassInvalidArgument), errors.IsMajor(err, query.MjrQuery):
		return Invalid
	default:
		return Failed
	}
}
