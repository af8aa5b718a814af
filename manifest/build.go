package manifest

import (
	"math"

	keygate "github.com/keygate/keygate"
	"github.com/keygate/keygate/dsl"
	"github.com/keygate/keygate/i18n"
)

// Build converts the manifest into a catalog. Entries that name an unknown
// validator type or carry unusable parameters are reported as Issues; the
// error is nil only when every entry converted. Duplicate keys are not an
// error; they surface through Catalog.Warnings.
func (m *Manifest) Build() (*keygate.Catalog, error) {
	b := keygate.NewCatalogBuilder()
	var iss keygate.Issues
	for _, e := range m.Entries {
		v, bad := validatorFor(e)
		if bad != "" {
			iss = keygate.AppendIssues(iss, keygate.Issue{
				Key:     e.Key,
				Code:    bad,
				Message: i18n.T(bad, map[string]string{"key": e.Key}),
				Params:  map[string]any{"type": e.Type},
			})
			continue
		}
		b.Register(e.Key, v)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return b.Build(), nil
}

// maxBitmaskFlags bounds bitmask declarations: the accepted set is enumerated
// exhaustively (2^n members), so manifests must keep flag sets small.
const maxBitmaskFlags = 16

// intBound converts a manifest numeric bound to an exact int64. Fractional
// values and values outside the int64 range are refused rather than
// truncated.
func intBound(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < -9223372036854775808.0 || f >= 9223372036854775808.0 {
		return 0, false
	}
	return int64(f), true
}

// validatorFor maps one entry to its dsl variant. The second return value is
// an issue code ("" when the entry is well-formed).
func validatorFor(e Entry) (keygate.Validator, string) {
	if e.Key == "" {
		return nil, keygate.CodeBadParams
	}
	var v keygate.Validator
	switch e.Type {
	case "bool":
		v = dsl.Bool()
	case "int":
		min, max := int64(math.MinInt64), int64(math.MaxInt64)
		var ok bool
		if e.Min != nil {
			if min, ok = intBound(*e.Min); !ok {
				return nil, keygate.CodeBadParams
			}
		}
		if e.Max != nil {
			if max, ok = intBound(*e.Max); !ok {
				return nil, keygate.CodeBadParams
			}
		}
		if min > max {
			return nil, keygate.CodeBadParams
		}
		v = dsl.IntRange(min, max)
	case "float":
		min, max := math.Inf(-1), math.Inf(1)
		if e.Min != nil {
			min = *e.Min
		}
		if e.Max != nil {
			max = *e.Max
		}
		if min > max {
			return nil, keygate.CodeBadParams
		}
		v = dsl.FloatRange(min, max)
	case "enum":
		if len(e.Values) == 0 {
			return nil, keygate.CodeBadParams
		}
		if e.AllowAbsent {
			v = dsl.EnumOrAbsent(e.Values...)
		} else {
			v = dsl.Enum(e.Values...)
		}
	case "uri":
		v = dsl.URI()
	case "component":
		v = dsl.Component()
	case "address":
		v = dsl.LenientAddress()
	case "date-format":
		v = dsl.DateFormat()
	case "any":
		v = dsl.Any()
	case "maxlength":
		if e.MaxLength == nil || *e.MaxLength < 0 {
			return nil, keygate.CodeBadParams
		}
		v = dsl.MaxLength(*e.MaxLength)
	case "fields":
		if e.Separator == "" || len(e.Fields) == 0 {
			return nil, keygate.CodeBadParams
		}
		subs := make([]keygate.Validator, len(e.Fields))
		for i, fe := range e.Fields {
			fe.Key = "_" // sub-entries carry no key of their own
			sub, bad := validatorFor(fe)
			if bad != "" {
				return nil, bad
			}
			subs[i] = sub
		}
		fv := dsl.Fields(e.Separator, subs...)
		if e.AllowAbsent {
			v = dsl.OrAbsent(fv)
		} else {
			v = fv
		}
	case "pairs":
		if e.Separator == "" || e.KVSep == "" {
			return nil, keygate.CodeBadParams
		}
		v = dsl.PairList(e.Separator, e.KVSep)
	case "bitmask":
		if len(e.Flags) == 0 || len(e.Flags) > maxBitmaskFlags {
			return nil, keygate.CodeBadParams
		}
		v = dsl.Bitmask(e.Flags...)
	default:
		return nil, keygate.CodeUnknownValidator
	}
	return v, ""
}
