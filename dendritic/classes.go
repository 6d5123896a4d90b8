package dendritic

import (
	"github.com/neuronlabs/emodel/errors"
)

var (
	// MjrData is the major error classification for the reference data.
	MjrData errors.Major

	// ClassDataFile is the classification for the reference data files that could not be opened.
	ClassDataFile errors.Class
	// ClassDataParse is the classification for the malformed reference data rows.
	ClassDataParse errors.Class
)

func init() {
	MjrData = errors.MustNewMajor()

	ClassDataFile = errors.MustNewMajorClass(MjrData)
	ClassDataParse = errors.MustNewMajorClass(MjrData)
}
