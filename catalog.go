package keygate

import (
	"fmt"
	"sort"
)

// Catalog is an immutable mapping from configuration key to its Validator.
// It is built exactly once via CatalogBuilder and is safe for concurrent
// readers without locking.
type Catalog struct {
	entries  map[string]Validator
	warnings []string
}

// Lookup returns the validator registered for key, if present.
func (c *Catalog) Lookup(key string) (Validator, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Keys returns the registered keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of registered keys.
func (c *Catalog) Len() int { return len(c.entries) }

// Warnings returns build-time registration warnings (duplicate keys, dropped
// entries). Warnings never make a catalog unusable; they exist so tests and
// maintainers notice registration hazards.
func (c *Catalog) Warnings() []string {
	out := make([]string, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// CatalogBuilder accumulates (key, validator) registrations and produces an
// immutable Catalog. Duplicate registration follows last-write-wins map
// semantics but is recorded as a warning.
type CatalogBuilder struct {
	entries  map[string]Validator
	warnings []string
}

// NewCatalogBuilder returns an empty builder.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{entries: map[string]Validator{}}
}

// Register adds a validator for key and returns the builder for chaining.
// An empty key or nil validator is dropped with a warning; registering a key
// twice overwrites the previous validator and records a warning.
func (b *CatalogBuilder) Register(key string, v Validator) *CatalogBuilder {
	if key == "" {
		b.warnings = append(b.warnings, "catalog: dropped registration with empty key")
		return b
	}
	if v == nil {
		b.warnings = append(b.warnings, fmt.Sprintf("catalog: dropped nil validator for %q", key))
		return b
	}
	if _, exists := b.entries[key]; exists {
		b.warnings = append(b.warnings, fmt.Sprintf("catalog: duplicate registration for %q (last write wins)", key))
	}
	b.entries[key] = v
	return b
}

// Build snapshots the registrations into an immutable Catalog. The builder
// may keep registering afterwards; already-built catalogs are unaffected.
func (b *CatalogBuilder) Build() *Catalog {
	entries := make(map[string]Validator, len(b.entries))
	for k, v := range b.entries {
		entries[k] = v
	}
	warnings := make([]string, len(b.warnings))
	copy(warnings, b.warnings)
	return &Catalog{entries: entries, warnings: warnings}
}
