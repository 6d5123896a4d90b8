package dendritic

import (
	"bytes"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/log"
)

var logger = log.NewModuleLogger("dendritic")

// Loader reads the reference datasets from the file system root containing the data files.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates the loader that reads the data files from the root of 'fsys'.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDirLoader creates the loader that reads the data files from the directory 'dir'.
// An empty 'dir' gets the loader of the bundled files.
func NewDirLoader(dir string) *Loader {
	if dir == "" {
		return defaultLoader
	}
	return NewLoader(os.DirFS(dir))
}

// Read reads and parses the dataset for given 'dataType'.
// Each row must contain exactly two float fields: the distance and the value.
func (l *Loader) Read(dataType DataType) (*Data, error) {
	name, err := fileName(dataType)
	if err != nil {
		return nil, err
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(ClassDataFile, err, "opening %s data file failed", dataType)
	}
	defer f.Close()

	data, err := parse(f, dataType, name)
	if err != nil {
		return nil, err
	}

	if dataType == Rheobase {
		for i := range data.Values {
			data.Values[i] /= rheobaseScale
		}
	}
	logger.Debugf("Read %d rows of the %s data from: %s", data.Len(), dataType, name)
	return data, nil
}

func parse(r io.Reader, dataType DataType, name string) (*Data, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ClassDataFile, err, "reading %s failed", name)
	}
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	data := &Data{Type: dataType, Distances: []float64{}, Values: []float64{}}
	// csv.Reader skips the empty lines, each row must follow the previous one.
	var lastLine int
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ClassDataParse, err, "reading %s failed", name)
		}
		line, _ := reader.FieldPos(0)
		if line != lastLine+1 {
			return nil, emptyRow(name, lastLine+1)
		}
		lastLine, _ = reader.FieldPos(len(row) - 1)

		distance, err := parseFloat(row[0])
		if err != nil {
			return nil, errors.NewDetf(ClassDataParse, "%s:%d invalid distance: '%s'", name, line, row[0]).WithDetail(strings.Join(row, ","))
		}
		value, err := parseFloat(row[1])
		if err != nil {
			return nil, errors.NewDetf(ClassDataParse, "%s:%d invalid value: '%s'", name, line, row[1]).WithDetail(strings.Join(row, ","))
		}
		data.Distances = append(data.Distances, distance)
		data.Values = append(data.Values, value)
	}

	lines := bytes.Count(content, []byte{'\n'})
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lines++
	}
	if lines > lastLine {
		return nil, emptyRow(name, lastLine+1)
	}
	return data, nil
}

func emptyRow(name string, line int) error {
	return errors.NewDetf(ClassDataParse, "%s:%d empty row, expected distance and value", name, line)
}

func parseFloat(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}
