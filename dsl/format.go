package dsl

import (
	"net/url"
	"strings"

	keygate "github.com/keygate/keygate"
)

// URIValidator accepts strings parseable as URI references, or the absent
// value.
type URIValidator struct{}

// URI returns the URI-reference validator.
func URI() URIValidator { return URIValidator{} }

func (URIValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok {
		return true
	}
	_, err := url.Parse(s)
	return err == nil
}

// ComponentValidator accepts two-part "package/class" identifiers: a single
// '/' with non-empty text on both sides.
type ComponentValidator struct{}

// Component returns the component-reference validator.
func Component() ComponentValidator { return ComponentValidator{} }

func (ComponentValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok {
		return false
	}
	i := strings.IndexByte(s, '/')
	if i <= 0 || i == len(s)-1 {
		return false
	}
	return strings.IndexByte(s[i+1:], '/') < 0
}

// maxAddressLen bounds lenient address literals; the longest textual IPv6
// form (including an embedded IPv4 tail) is 45 bytes.
const maxAddressLen = 45

// LenientAddressValidator accepts syntactically plausible IPv4/IPv6 literals
// or the empty/absent value. It intentionally does not require a fully valid
// address; the consumer performs the real connectivity-level validation.
type LenientAddressValidator struct{}

// LenientAddress returns the lenient IP address validator.
func LenientAddress() LenientAddressValidator { return LenientAddressValidator{} }

func (LenientAddressValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok || s == "" {
		return true
	}
	if len(s) > maxAddressLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		case c == ':' || c == '.':
		default:
			return false
		}
	}
	return true
}

// dateLayoutLetters are the pattern letters permitted outside quoted
// sections of a date-layout string.
const dateLayoutLetters = "GyYMLwWDdFEuaHkKhmsSzZX"

// DateFormatValidator accepts date-layout patterns that a layout compiler
// would not reject outright: quotes must balance and every unquoted letter
// must be a known pattern letter.
type DateFormatValidator struct{}

// DateFormat returns the date-layout validator.
func DateFormat() DateFormatValidator { return DateFormatValidator{} }

func (DateFormatValidator) Evaluate(v keygate.Value) bool {
	s, ok := v.Get()
	if !ok {
		return false
	}
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' {
			inQuote = !inQuote
			continue
		}
		if inQuote {
			continue
		}
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if isLetter && !strings.ContainsRune(dateLayoutLetters, rune(c)) {
			return false
		}
	}
	return !inQuote
}
