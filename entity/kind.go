package entity

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/namer"
)

// Kind is the resource kind served by the entity service.
type Kind int

// Resource kinds.
const (
	KindEModel Kind = iota + 1
	KindIonChannel
	KindSubcellularModelScript
	KindExtractionConfig
	KindTrace
)

// Kinds are all the resource kinds in their declaration order.
var Kinds = []Kind{KindEModel, KindIonChannel, KindSubcellularModelScript, KindExtractionConfig, KindTrace}

var kindNames = map[Kind]string{
	KindEModel:                 "emodel",
	KindIonChannel:             "ion channel",
	KindSubcellularModelScript: "subcellular model script",
	KindExtractionConfig:       "extraction config",
	KindTrace:                  "trace",
}

var kindServiceNames = map[Kind]string{
	KindEModel:                 "emodel",
	KindIonChannel:             "ion_channel_model",
	KindSubcellularModelScript: "sub_cellular_model_script",
	KindExtractionConfig:       "extraction_config",
	KindTrace:                  "electrical_cell_recording",
}

// String implements fmt.Stringer interface. Returns human readable kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Plural gets the plural form of the kind name i.e. 'ion channels'.
func (k Kind) Plural() string {
	return inflection.Plural(k.String())
}

// Valid checks if the kind is known.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ServiceName is the name of the entity service that serves given kind.
func (k Kind) ServiceName() string {
	return kindServiceNames[k]
}

// Route gets the kind's route of the entity service REST API i.e. 'ion-channel-model'.
func (k Kind) Route() string {
	return namer.NamingKebab(k.ServiceName())
}

// ParseKind parses the kind from its name, its service name or its route.
// The match is case insensitive and ignores the separators.
func ParseKind(name string) (Kind, error) {
	normalized := namer.NamingSnake(strings.TrimSpace(name))
	for _, k := range Kinds {
		if normalized == namer.NamingSnake(k.String()) || normalized == k.ServiceName() ||
			normalized == namer.NamingSnake(k.Plural()) {
			return k, nil
		}
	}
	return 0, errors.NewDetf(errors.ClassInvalidArgument, "unknown resource kind: '%s'", name)
}
