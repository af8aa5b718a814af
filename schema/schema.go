// Package schema projects a keygate.Catalog into a minimal JSON-Schema-like
// document for documentation and tooling. Selection happens via a type switch
// over the closed dsl variant set.
package schema

// Schema is a minimal per-key schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`

	// Numeric ranges (inclusive)
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Strings
	Enum      []string `json:"enum,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`

	// Absent-value policy
	Nullable bool `json:"nullable,omitempty"`

	// Composites
	Delimiter string    `json:"delimiter,omitempty"`
	Fields    []*Schema `json:"fields,omitempty"`
	Flags     []int64   `json:"flags,omitempty"`
	AllOf     []*Schema `json:"allOf,omitempty"`
	AnyOf     []*Schema `json:"anyOf,omitempty"`
}
