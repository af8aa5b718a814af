package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keygate "github.com/keygate/keygate"
	"github.com/keygate/keygate/manifest"
)

const yamlDoc = `
entries:
  - key: dim_screen
    type: bool
  - key: font_scale
    type: float
    min: 0.80
    max: 1.3
  - key: tty_mode
    type: int
    min: 0
    max: 3
  - key: time_12_24
    type: enum
    values: ["12", "24"]
    allowAbsent: true
  - key: ringtone
    type: uri
  - key: display_color_adjustment
    type: fields
    separator: " "
    allowAbsent: true
    fields:
      - {type: float, min: 0, max: 1}
      - {type: float, min: 0, max: 1}
      - {type: float, min: 0, max: 1}
  - key: display_picture_adjustment
    type: pairs
    separator: ","
    kvSeparator: ":"
  - key: stay_on_while_plugged_in
    type: bitmask
    flags: [1, 2, 4]
`

func TestFromYAML_BuildsWorkingCatalog(t *testing.T) {
	m, err := manifest.FromYAML([]byte(yamlDoc))
	require.NoError(t, err)
	require.Len(t, m.Entries, 8)

	c, err := m.Build()
	require.NoError(t, err)
	assert.Empty(t, c.Warnings())

	r := keygate.NewRegistry(c)
	assert.Equal(t, keygate.Allowed, r.Accept("dim_screen", keygate.StringValue("true")))
	assert.Equal(t, keygate.RejectedInvalidValue, r.Accept("dim_screen", keygate.StringValue("maybe")))
	assert.Equal(t, keygate.Allowed, r.Accept("font_scale", keygate.StringValue("1.3")))
	assert.Equal(t, keygate.RejectedInvalidValue, r.Accept("font_scale", keygate.StringValue("1.31")))
	assert.Equal(t, keygate.Allowed, r.Accept("time_12_24", keygate.Absent()))
	assert.Equal(t, keygate.Allowed, r.Accept("display_color_adjustment", keygate.StringValue("0.5 0.5 0.5")))
	assert.Equal(t, keygate.RejectedInvalidValue, r.Accept("display_color_adjustment", keygate.StringValue("0.5 0.5")))
	assert.Equal(t, keygate.Allowed, r.Accept("stay_on_while_plugged_in", keygate.StringValue("7")))
	assert.Equal(t, keygate.RejectedInvalidValue, r.Accept("stay_on_while_plugged_in", keygate.StringValue("8")))
	assert.Equal(t, keygate.RejectedUnknownKey, r.Accept("not_declared", keygate.StringValue("x")))
}

func TestFromJSON_Equivalent(t *testing.T) {
	doc := `{"entries":[
		{"key":"dim_screen","type":"bool"},
		{"key":"tty_mode","type":"int","min":0,"max":3}
	]}`
	m, err := manifest.FromJSON([]byte(doc))
	require.NoError(t, err)

	c, err := m.Build()
	require.NoError(t, err)
	r := keygate.NewRegistry(c)
	assert.Equal(t, keygate.Allowed, r.Accept("tty_mode", keygate.StringValue("3")))
	assert.Equal(t, keygate.RejectedInvalidValue, r.Accept("tty_mode", keygate.StringValue("4")))
}

func TestBuild_UnknownValidatorType(t *testing.T) {
	m := &manifest.Manifest{Entries: []manifest.Entry{
		{Key: "weird", Type: "regexp"},
	}}
	_, err := m.Build()
	require.Error(t, err)
	iss, ok := keygate.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, keygate.CodeUnknownValidator, iss[0].Code)
	assert.Equal(t, "weird", iss[0].Key)
}

func TestBuild_BadParams(t *testing.T) {
	cases := []manifest.Entry{
		{Key: "e", Type: "enum"},                                        // no values
		{Key: "i", Type: "int", Min: f(10), Max: f(1)},                  // inverted range
		{Key: "m", Type: "maxlength"},                                   // missing bound
		{Key: "f", Type: "fields", Separator: " "},                      // no sub-fields
		{Key: "p", Type: "pairs", Separator: ","},                       // missing kv separator
		{Key: "b", Type: "bitmask"},                                     // no flags
		{Key: "", Type: "bool"},                                         // empty key
		{Key: "n", Type: "fields", Separator: ",", Fields: []manifest.Entry{{Type: "nope"}}},
		{Key: "frac", Type: "int", Min: f(0.5)},                         // fractional bound
		{Key: "huge", Type: "int", Max: f(1e19)},                        // beyond int64
		{Key: "wide", Type: "bitmask", Flags: make([]int64, 17)},        // enumeration too large
	}
	for _, e := range cases {
		m := &manifest.Manifest{Entries: []manifest.Entry{e}}
		_, err := m.Build()
		require.Errorf(t, err, "entry %+v must fail", e)
	}
}

func TestBuild_IntegralFloatBoundsConvertExactly(t *testing.T) {
	m := &manifest.Manifest{Entries: []manifest.Entry{
		{Key: "n", Type: "int", Min: f(-3), Max: f(7)},
	}}
	c, err := m.Build()
	require.NoError(t, err)

	r := keygate.NewRegistry(c)
	assert.Equal(t, keygate.Allowed, r.Accept("n", keygate.StringValue("-3")))
	assert.Equal(t, keygate.Allowed, r.Accept("n", keygate.StringValue("7")))
	assert.Equal(t, keygate.RejectedInvalidValue, r.Accept("n", keygate.StringValue("8")))
}

func TestBuild_DuplicateKeySurfacesAsWarning(t *testing.T) {
	m := &manifest.Manifest{Entries: []manifest.Entry{
		{Key: "dup", Type: "bool"},
		{Key: "dup", Type: "bool"},
	}}
	c, err := m.Build()
	require.NoError(t, err)
	assert.Len(t, c.Warnings(), 1)
	assert.Equal(t, 1, c.Len())
}

func f(v float64) *float64 { return &v }
