// Package manifest loads declarative catalog definitions from YAML or JSON
// and builds keygate catalogs from them. A manifest is the file-backed
// alternative to registering validators in code; the produced catalog is the
// same immutable value either way.
package manifest

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Entry declares one catalog registration. Type selects the validator
// variant; the remaining fields parameterize it and are ignored by variants
// that do not use them.
type Entry struct {
	Key  string `json:"key" yaml:"key"`
	Type string `json:"type" yaml:"type"`

	// Numeric ranges (int, float)
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`

	// enum
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// enum, fields: accept the absent value as well
	AllowAbsent bool `json:"allowAbsent,omitempty" yaml:"allowAbsent,omitempty"`

	// maxlength
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	// fields, pairs
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`
	KVSep     string `json:"kvSeparator,omitempty" yaml:"kvSeparator,omitempty"`

	// fields: one sub-entry per delimited field (Key unused on sub-entries)
	Fields []Entry `json:"fields,omitempty" yaml:"fields,omitempty"`

	// bitmask
	Flags []int64 `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Manifest is an ordered list of entries. Order matters only for duplicate
// keys, which follow last-write-wins semantics and surface as warnings.
type Manifest struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// FromYAML decodes a YAML manifest document.
func FromYAML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// FromJSON decodes a JSON manifest document.
func FromJSON(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
