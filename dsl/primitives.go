package dsl

import (
	"math"

	keygate "github.com/keygate/keygate"
	"github.com/keygate/keygate/internal/parse"
)

// BoolValidator accepts exactly the canonical forms "true" and "false".
type BoolValidator struct{}

// Bool returns the boolean validator.
func Bool() BoolValidator { return BoolValidator{} }

func (BoolValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	return ok && (s == "true" || s == "false")
}

// IntRangeValidator accepts signed decimal integers within [Min, Max],
// bounds inclusive.
type IntRangeValidator struct {
	Min, Max int64
}

// IntRange returns an inclusive integer range validator.
func IntRange(min, max int64) IntRangeValidator { return IntRangeValidator{Min: min, Max: max} }

// NonNegativeInt accepts any integer >= 0.
func NonNegativeInt() IntRangeValidator { return IntRange(0, math.MaxInt64) }

func (r IntRangeValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok {
		return false
	}
	n, ok := parse.Int(s)
	return ok && n >= r.Min && n <= r.Max
}

// FloatRangeValidator accepts IEEE floats within [Min, Max], bounds
// inclusive. NaN never satisfies the comparison and is therefore rejected.
type FloatRangeValidator struct {
	Min, Max float64
}

// FloatRange returns an inclusive float range validator.
func FloatRange(min, max float64) FloatRangeValidator {
	return FloatRangeValidator{Min: min, Max: max}
}

func (r FloatRangeValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok {
		return false
	}
	f, ok := parse.Float(s)
	return ok && f >= r.Min && f <= r.Max
}

// EnumValidator accepts exact matches from a fixed set of strings, optionally
// including the absent value.
type EnumValidator struct {
	Values      []string
	AllowAbsent bool
}

// Enum returns a discrete-set validator over the given values.
func Enum(values ...string) EnumValidator {
	return EnumValidator{Values: append([]string(nil), values...)}
}

// EnumOrAbsent is Enum with the absent value also accepted.
func EnumOrAbsent(values ...string) EnumValidator {
	e := Enum(values...)
	e.AllowAbsent = true
	return e
}

func (e EnumValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok {
		return e.AllowAbsent
	}
	for _, want := range e.Values {
		if s == want {
			return true
		}
	}
	return false
}

// AnyValidator accepts everything, including the absent value. It exists as
// an explicit opt-out; catalogs never default to it silently.
type AnyValidator struct{}

// Any returns the unrestricted validator.
func Any() AnyValidator { return AnyValidator{} }

func (AnyValidator) Evaluate(keygate.Value) bool { return true }

// MaxLengthValidator accepts absent values and present strings of at most Max
// bytes.
type MaxLengthValidator struct {
	Max int
}

// MaxLength returns a length-bounded validator.
func MaxLength(max int) MaxLengthValidator { return MaxLengthValidator{Max: max} }

func (m MaxLengthValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok {
		return true
	}
	return len(s) <= m.Max
}
