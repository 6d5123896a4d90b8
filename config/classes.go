package config

import (
	"github.com/neuronlabs/emodel/errors"
)

var (
	// MjrConfig is the major config error classification.
	MjrConfig errors.Major
	// ClassConfigInvalidValue is the errors classification for invalid config values.
	ClassConfigInvalidValue errors.Class
	// ClassConfigRead is the errors classification for the config files that could not be read.
	ClassConfigRead errors.Class
)

func init() {
	MjrConfig = errors.MustNewMajor()
	ClassConfigInvalidValue = errors.MustNewMajorClass(MjrConfig)
	ClassConfigRead = errors.MustNewMajorClass(MjrConfig)
}
