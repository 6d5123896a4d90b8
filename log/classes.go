package log

import (
	"github.com/neuronlabs/emodel/errors"
)

var (
	// MjrLogger is the major logger error classification.
	MjrLogger errors.Major
	// ClassInvalidLogger is the classification for the logger that doesn't implement required interface.
	ClassInvalidLogger errors.Class
	// ClassUnknownLevel is the classification for the unknown logger level.
	ClassUnknownLevel errors.Class
)

func init() {
	MjrLogger = errors.MustNewMajor()
	ClassInvalidLogger = errors.MustNewMajorClass(MjrLogger)
	ClassUnknownLevel = errors.MustNewMajorClass(MjrLogger)
}
