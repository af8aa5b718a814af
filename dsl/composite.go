package dsl

import (
	"strings"

	keygate "github.com/keygate/keygate"
	"github.com/keygate/keygate/internal/parse"
)

// FieldsValidator splits the input on Sep into exactly len(Subs) fields and
// requires every field to pass its designated sub-validator. A field-count
// mismatch rejects immediately.
type FieldsValidator struct {
	Sep  string
	Subs []keygate.Validator
}

// Fields returns a delimited multi-field composite validator.
func Fields(sep string, subs ...keygate.Validator) FieldsValidator {
	return FieldsValidator{Sep: sep, Subs: append([]keygate.Validator(nil), subs...)}
}

func (f FieldsValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok {
		return false
	}
	parts := strings.Split(s, f.Sep)
	if len(parts) != len(f.Subs) {
		return false
	}
	for i, p := range parts {
		if !f.Subs[i].Evaluate(keygate.StringValue(p)) {
			return false
		}
	}
	return true
}

// PairListValidator splits the input on ItemSep and requires every token to
// split on KVSep into exactly two parts. Empty or absent input is accepted.
type PairListValidator struct {
	ItemSep string
	KVSep   string
}

// PairList returns a two-level key:value list validator.
func PairList(itemSep, kvSep string) PairListValidator {
	return PairListValidator{ItemSep: itemSep, KVSep: kvSep}
}

func (p PairListValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok || s == "" {
		return true
	}
	for _, item := range strings.Split(s, p.ItemSep) {
		if len(strings.Split(item, p.KVSep)) != 2 {
			return false
		}
	}
	return true
}

// BitmaskValidator accepts integers equal to zero or to any bitwise-OR
// combination of the named flags. The accepted set is enumerated exhaustively
// at construction; evaluation is a plain membership test.
type BitmaskValidator struct {
	Flags   []int64
	allowed map[int64]struct{}
}

// Bitmask returns a flag-combination validator over the given flag values.
func Bitmask(flags ...int64) BitmaskValidator {
	b := BitmaskValidator{
		Flags:   append([]int64(nil), flags...),
		allowed: map[int64]struct{}{0: {}},
	}
	for mask := 1; mask < 1<<len(flags); mask++ {
		var combined int64
		for i, f := range flags {
			if mask&(1<<i) != 0 {
				combined |= f
			}
		}
		b.allowed[combined] = struct{}{}
	}
	return b
}

func (b BitmaskValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok {
		return false
	}
	n, ok := parse.Int(s)
	if !ok {
		return false
	}
	_, ok = b.allowed[n]
	return ok
}

// AllOfValidator requires every sub-validator to accept.
type AllOfValidator struct {
	Subs []keygate.Validator
}

// AllOf returns the conjunction of the given validators.
func AllOf(subs ...keygate.Validator) AllOfValidator {
	return AllOfValidator{Subs: append([]keygate.Validator(nil), subs...)}
}

func (a AllOfValidator) Evaluate(v keygate.Value) bool {
	for _, sub := range a.Subs {
		if !sub.Evaluate(v) {
			return false
		}
	}
	return true
}

// AnyOfValidator requires at least one sub-validator to accept.
type AnyOfValidator struct {
	Subs []keygate.Validator
}

// AnyOf returns the disjunction of the given validators.
func AnyOf(subs ...keygate.Validator) AnyOfValidator {
	return AnyOfValidator{Subs: append([]keygate.Validator(nil), subs...)}
}

func (a AnyOfValidator) Evaluate(v keygate.Value) bool {
	for _, sub := range a.Subs {
		if sub.Evaluate(v) {
			return true
		}
	}
	return false
}

// OrAbsentValidator accepts the absent value and otherwise delegates to Sub.
// It is the explicit null-is-valid policy wrapper.
type OrAbsentValidator struct {
	Sub keygate.Validator
}

// OrAbsent wraps a validator so that absence is accepted.
func OrAbsent(sub keygate.Validator) OrAbsentValidator { return OrAbsentValidator{Sub: sub} }

func (o OrAbsentValidator) Evaluate(v keygate.Value) bool {
	if !v.Present() {
		return true
	}
	return o.Sub.Evaluate(v)
}
