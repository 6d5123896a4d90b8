package accesspoint

import (
	"github.com/neuronlabs/emodel/errors"
)

var (
	// MjrAccessPoint is the major error classification for the access point failures.
	MjrAccessPoint errors.Major

	// ClassNoService is the classification for the resource kinds without registered service.
	ClassNoService errors.Class
	// ClassServicePanic is the classification for the services that panicked during the call.
	ClassServicePanic errors.Class
)

func init() {
	MjrAccessPoint = errors.MustNewMajor()

	ClassNoService = errors.MustNewMajorClass(MjrAccessPoint)
	ClassServicePanic = errors.MustNewMajorClass(MjrAccessPoint)
}
