package dendritic

import (
	"embed"
	"io/fs"
	"path"

	"github.com/neuronlabs/emodel/errors"
)

// DataDir is the directory of the bundled reference data files.
const DataDir = "data"

// DataType is the reference dataset identifier.
type DataType string

// Reference dataset types.
const (
	ISICV    DataType = "ISI_CV"
	Rheobase DataType = "rheobase"
)

// rheobaseScale converts the rheobase values from pA into nA.
const rheobaseScale = 1000.0

var fileNames = map[DataType]string{
	ISICV:    "ISI_CV_Shai2015.csv",
	Rheobase: "spike_rheobase_pA_BeaulieuLaroche2021.csv",
}

//go:embed data/*.csv
var bundled embed.FS

var defaultLoader = newBundledLoader()

// Data is the reference dataset. Distances and Values are parallel and keep the file order.
type Data struct {
	Type      DataType  `json:"type" yaml:"type"`
	Distances []float64 `json:"distances" yaml:"distances"`
	Values    []float64 `json:"values" yaml:"values"`
}

// Len gets the number of the dataset rows.
func (d *Data) Len() int {
	return len(d.Distances)
}

// FilePath gets the path of the bundled file for given 'dataType'.
func FilePath(dataType DataType) (string, error) {
	name, err := fileName(dataType)
	if err != nil {
		return "", err
	}
	return path.Join(DataDir, name), nil
}

// Read reads the bundled dataset for given 'dataType'.
func Read(dataType DataType) (*Data, error) {
	return defaultLoader.Read(dataType)
}

func fileName(dataType DataType) (string, error) {
	name, ok := fileNames[dataType]
	if !ok {
		return "", errors.NewDetf(errors.ClassInvalidArgument, "read_data expects '%s' or '%s' but got %s", ISICV, Rheobase, dataType)
	}
	return name, nil
}

func newBundledLoader() *Loader {
	sub, err := fs.Sub(bundled, DataDir)
	if err != nil {
		panic(err)
	}
	return NewLoader(sub)
}
