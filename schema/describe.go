package schema

import (
	json "github.com/goccy/go-json"

	keygate "github.com/keygate/keygate"
	"github.com/keygate/keygate/dsl"
)

// Describe projects every catalog entry into its Schema. Validators outside
// the closed dsl set degrade to an opaque string schema.
func Describe(c *keygate.Catalog) map[string]*Schema {
	out := make(map[string]*Schema, c.Len())
	for _, key := range c.Keys() {
		v, _ := c.Lookup(key)
		out[key] = Of(v)
	}
	return out
}

// JSON renders Describe(c) as indented JSON.
func JSON(c *keygate.Catalog) ([]byte, error) {
	return json.MarshalIndent(Describe(c), "", "  ")
}

// Of maps a single validator to its Schema.
func Of(v keygate.Validator) *Schema {
	switch t := v.(type) {
	case dsl.BoolValidator:
		return &Schema{Type: "boolean"}
	case dsl.IntRangeValidator:
		min, max := float64(t.Min), float64(t.Max)
		return &Schema{Type: "integer", Minimum: &min, Maximum: &max}
	case dsl.FloatRangeValidator:
		min, max := t.Min, t.Max
		return &Schema{Type: "number", Minimum: &min, Maximum: &max}
	case dsl.EnumValidator:
		return &Schema{Type: "string", Enum: append([]string(nil), t.Values...), Nullable: t.AllowAbsent}
	case dsl.URIValidator:
		return &Schema{Type: "string", Format: "uri-reference", Nullable: true}
	case dsl.ComponentValidator:
		return &Schema{Type: "string", Format: "component-reference"}
	case dsl.LenientAddressValidator:
		return &Schema{Type: "string", Format: "ip-address-lenient", Nullable: true}
	case dsl.DateFormatValidator:
		return &Schema{Type: "string", Format: "date-layout"}
	case dsl.MaxLengthValidator:
		max := t.Max
		return &Schema{Type: "string", MaxLength: &max, Nullable: true}
	case dsl.AnyValidator:
		return &Schema{Type: "string", Format: "any", Nullable: true}
	case dsl.FieldsValidator:
		fields := make([]*Schema, len(t.Subs))
		for i, sub := range t.Subs {
			fields[i] = Of(sub)
		}
		return &Schema{Type: "string", Delimiter: t.Sep, Fields: fields}
	case dsl.PairListValidator:
		return &Schema{Type: "string", Format: "pair-list", Delimiter: t.ItemSep, Nullable: true}
	case dsl.BitmaskValidator:
		return &Schema{Type: "integer", Flags: append([]int64(nil), t.Flags...)}
	case dsl.AllOfValidator:
		subs := make([]*Schema, len(t.Subs))
		for i, sub := range t.Subs {
			subs[i] = Of(sub)
		}
		return &Schema{AllOf: subs}
	case dsl.AnyOfValidator:
		subs := make([]*Schema, len(t.Subs))
		for i, sub := range t.Subs {
			subs[i] = Of(sub)
		}
		return &Schema{AnyOf: subs}
	case dsl.OrAbsentValidator:
		s := Of(t.Sub)
		s.Nullable = true
		return s
	default:
		return &Schema{Type: "string"}
	}
}
