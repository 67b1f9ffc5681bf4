package catalog

import (
	"gopkg.in/yaml.v3"

	"github.com/skytrace/asterix/record"
)

// SlotDescription is one catalog entry: a Field Reference Number and
// whether it currently holds a value on the Record it was described from.
type SlotDescription struct {
	FRN     int  `yaml:"frn"`
	Present bool `yaml:"present"`
}

// Description is a YAML-friendly snapshot of a Record's catalog.
type Description struct {
	Slots []SlotDescription `yaml:"slots"`
}

// Describe builds a Description listing every FRN def's catalog defines, in
// ascending order, alongside whether each is currently present.
func Describe(def record.Definition) Description {
	slots := def.Slots()
	desc := Description{Slots: make([]SlotDescription, len(slots))}
	for i, s := range slots {
		desc.Slots[i] = SlotDescription{FRN: s.FRN(), Present: s.Present()}
	}

	return desc
}

// YAML renders a Description as a human-readable YAML document, for use in
// test failure messages and debugging output.
func (d Description) YAML() (string, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
