package entity

import (
	"github.com/neuronlabs/emodel/errors"
)

var (
	// MjrEntity is the major error classification for the entity service failures.
	MjrEntity errors.Major

	// ClassNotFound is the classification for the resources that doesn't exist.
	ClassNotFound errors.Class
	// ClassDenied is the classification for the requests the user context is not authorized for.
	ClassDenied errors.Class
	// ClassUnavailable is the classification for the service transport and availability failures.
	ClassUnavailable errors.Class
	// ClassInvalidSession is the classification for the session handles the service can't use.
	ClassInvalidSession errors.Class
	// ClassMalformedResponse is the classification for the responses the service can't decode.
	ClassMalformedResponse errors.Class
)

func init() {
	MjrEntity = errors.MustNewMajor()

	ClassNotFound = errors.MustNewMajorClass(MjrEntity)
	ClassDenied = errors.MustNewMajorClass(MjrEntity)
	ClassUnavailable = errors.MustNewMajorClass(MjrEntity)
	ClassInvalidSession = errors.MustNewMajorClass(MjrEntity)
	ClassMalformedResponse = errors.MustNewMajorClass(MjrEntity)
}
