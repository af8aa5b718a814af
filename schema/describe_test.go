package schema_test

import (
	"testing"

	keygate "github.com/keygate/keygate"
	g "github.com/keygate/keygate/dsl"
	"github.com/keygate/keygate/schema"
)

func TestOf_Variants(t *testing.T) {
	if s := schema.Of(g.Bool()); s.Type != "boolean" {
		t.Fatalf("bool: got %+v", s)
	}

	s := schema.Of(g.IntRange(0, 3))
	if s.Type != "integer" || s.Minimum == nil || *s.Minimum != 0 || s.Maximum == nil || *s.Maximum != 3 {
		t.Fatalf("int range: got %+v", s)
	}

	s = schema.Of(g.FloatRange(0.80, 1.3))
	if s.Type != "number" || *s.Minimum != 0.80 || *s.Maximum != 1.3 {
		t.Fatalf("float range: got %+v", s)
	}

	s = schema.Of(g.EnumOrAbsent("12", "24"))
	if s.Type != "string" || len(s.Enum) != 2 || !s.Nullable {
		t.Fatalf("enum: got %+v", s)
	}

	s = schema.Of(g.OrAbsent(g.Fields(" ", g.FloatRange(0, 1), g.FloatRange(0, 1), g.FloatRange(0, 1))))
	if !s.Nullable || s.Delimiter != " " || len(s.Fields) != 3 {
		t.Fatalf("composite: got %+v", s)
	}

	s = schema.Of(g.Bitmask(1, 2, 4))
	if s.Type != "integer" || len(s.Flags) != 3 {
		t.Fatalf("bitmask: got %+v", s)
	}

	s = schema.Of(g.AnyOf(g.IntRange(0, 3), g.IntRange(256, 511)))
	if len(s.AnyOf) != 2 {
		t.Fatalf("anyOf: got %+v", s)
	}
}

type opaque struct{}

func (opaque) Evaluate(keygate.Value) bool { return true }

func TestOf_UnknownValidatorDegrades(t *testing.T) {
	if s := schema.Of(opaque{}); s.Type != "string" {
		t.Fatalf("expected opaque fallback, got %+v", s)
	}
}

func TestDescribeAndJSON(t *testing.T) {
	b := keygate.NewCatalogBuilder()
	b.Register("dim_screen", g.Bool())
	b.Register("tty_mode", g.IntRange(0, 3))
	c := b.Build()

	m := schema.Describe(c)
	if len(m) != 2 || m["dim_screen"].Type != "boolean" || m["tty_mode"].Type != "integer" {
		t.Fatalf("describe: got %+v", m)
	}

	data, err := schema.JSON(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected JSON output")
	}
}
