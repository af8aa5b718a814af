package keygate

import (
	"github.com/keygate/keygate/i18n"
)

// Value models a setting payload that may be absent. Callers that receive a
// nullable string from their persistence layer map nil to Absent() and
// everything else to StringValue.
type Value struct {
	str     string
	present bool
}

// StringValue wraps a present string, including the empty string.
func StringValue(s string) Value { return Value{str: s, present: true} }

// Absent returns the absent value.
func Absent() Value { return Value{} }

// Get returns the underlying string and whether it is present.
func (v Value) Get() (string, bool) { return v.str, v.present }

// Present reports whether the value carries a string at all.
func (v Value) Present() bool { return v.present }

// Validator is a pure predicate over a single setting value. Implementations
// must be stateless, must never panic for any input, and must treat a parse
// failure as a rejection rather than an error.
type Validator interface {
	Evaluate(v Value) bool
}

// UnknownKeyPolicy decides what a Registry does with keys the catalog does
// not know about.
type UnknownKeyPolicy int

const (
	// RejectUnknown rejects writes to unregistered keys. This is the default:
	// a key without a validator is an explicit, observable decision instead of
	// a silent omission.
	RejectUnknown UnknownKeyPolicy = iota
	// AllowUnknown lets writes to unregistered keys pass through unchecked.
	AllowUnknown
)

// Registry is the acceptance facade over an injected Catalog. It performs no
// persistence, broadcast, or I/O; the caller owns everything after the
// decision.
type Registry struct {
	catalog *Catalog
	unknown UnknownKeyPolicy
}

// RegistryOption adjusts Registry construction.
type RegistryOption func(*Registry)

// WithUnknownKeyPolicy overrides the default RejectUnknown policy.
func WithUnknownKeyPolicy(p UnknownKeyPolicy) RegistryOption {
	return func(r *Registry) { r.unknown = p }
}

// NewRegistry wraps a catalog. A nil catalog behaves as an empty one.
func NewRegistry(c *Catalog, opts ...RegistryOption) *Registry {
	if c == nil {
		c = NewCatalogBuilder().Build()
	}
	r := &Registry{catalog: c, unknown: RejectUnknown}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// Catalog returns the injected catalog.
func (r *Registry) Catalog() *Catalog { return r.catalog }

// Accept decides whether value may be written under key. It is pure: calling
// it twice with identical inputs yields identical decisions.
func (r *Registry) Accept(key string, v Value) Decision {
	val, ok := r.catalog.Lookup(key)
	if !ok {
		if r.unknown == AllowUnknown {
			return Allowed
		}
		return RejectedUnknownKey
	}
	if val.Evaluate(v) {
		return Allowed
	}
	return RejectedInvalidValue
}

// Explain is Accept plus structured issues for observability. The returned
// Issues slice is empty for Allowed.
func (r *Registry) Explain(key string, v Value) (Decision, Issues) {
	d := r.Accept(key, v)
	switch d {
	case RejectedUnknownKey:
		return d, Issues{Issue{
			Key:     key,
			Code:    CodeUnknownKey,
			Message: i18n.T(CodeUnknownKey, map[string]string{"key": key}),
		}}
	case RejectedInvalidValue:
		iss := Issue{
			Key:     key,
			Code:    CodeInvalidValue,
			Message: i18n.T(CodeInvalidValue, map[string]string{"key": key}),
		}
		if s, ok := v.Get(); ok {
			iss.Params = map[string]any{"value": s}
		}
		return d, Issues{iss}
	default:
		return d, nil
	}
}
