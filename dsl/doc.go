// Package dsl provides the closed set of validator constructors for keygate.
//
// Overview
//   - Primitives: Bool()/IntRange()/NonNegativeInt()/FloatRange()/Enum()/Any()/MaxLength().
//   - Formats: URI()/Component()/LenientAddress()/DateFormat().
//   - Composites: Fields()/PairList()/Bitmask()/AllOf()/AnyOf()/OrAbsent().
//
// Every constructor returns an exported struct type so that catalog tooling
// (the schema package) can select behavior with a type switch over the closed
// variant set instead of widening the Validator interface.
//
// Contract shared by all variants: evaluation is a pure function of the input
// value plus construction-time parameters; malformed input is a rejection,
// never a panic or an error.
//
// File layout (roles)
//   - primitives.go: boolean, numeric-range, enum, length and opt-out variants.
//   - format.go: URI, component-reference, lenient-address and date-layout checks.
//   - composite.go: delimited multi-field, pair-list, bitmask and combinator variants.
package dsl
