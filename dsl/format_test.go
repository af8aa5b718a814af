package dsl_test

import (
	"strings"
	"testing"

	keygate "github.com/keygate/keygate"
	g "github.com/keygate/keygate/dsl"
)

func TestURI_Basic(t *testing.T) {
	v := g.URI()
	for _, ok := range []string{
		"content://media/internal/audio/media/30",
		"https://example.com/a?b=c",
		"relative/path",
		"",
	} {
		if !v.Evaluate(present(ok)) {
			t.Fatalf("expected %q accepted", ok)
		}
	}
	if !v.Evaluate(keygate.Absent()) {
		t.Fatalf("expected absent accepted")
	}
	if v.Evaluate(present("http://exa mple.com/%zz")) {
		t.Fatalf("expected malformed URI rejected")
	}
}

func TestComponent_TwoPartForm(t *testing.T) {
	v := g.Component()
	for _, ok := range []string{
		"com.android.music/com.android.music.MediaButtonIntentReceiver",
		"a/b",
		"pkg/.RelativeClass",
	} {
		if !v.Evaluate(present(ok)) {
			t.Fatalf("expected %q accepted", ok)
		}
	}
	for _, bad := range []string{"", "noslash", "/leading", "trailing/", "a/b/c"} {
		if v.Evaluate(present(bad)) {
			t.Fatalf("expected %q rejected", bad)
		}
	}
	if v.Evaluate(keygate.Absent()) {
		t.Fatalf("expected absent rejected")
	}
}

func TestLenientAddress_PlausibleLiterals(t *testing.T) {
	v := g.LenientAddress()
	for _, ok := range []string{
		"",
		"192.168.1.1",
		"255.255.255.0",
		"fe80::1",
		"2001:db8::8a2e:370:7334",
		"::ffff:192.0.2.1",
	} {
		if !v.Evaluate(present(ok)) {
			t.Fatalf("expected %q accepted", ok)
		}
	}
	if !v.Evaluate(keygate.Absent()) {
		t.Fatalf("expected absent accepted")
	}
	for _, bad := range []string{
		"not an ip",
		"192.168.1.1/24",
		"fe80::%eth0",
		strings.Repeat("1", 46),
	} {
		if v.Evaluate(present(bad)) {
			t.Fatalf("expected %q rejected", bad)
		}
	}
}

func TestDateFormat_LayoutPlausibility(t *testing.T) {
	v := g.DateFormat()
	for _, ok := range []string{
		"yyyy-MM-dd",
		"EEE, d MMM yyyy",
		"HH:mm:ss",
		"hh 'o''clock' a",
		"", // an empty pattern is constructible
	} {
		if !v.Evaluate(present(ok)) {
			t.Fatalf("expected %q accepted", ok)
		}
	}
	for _, bad := range []string{
		"yyyy-QQ-dd", // Q is not a pattern letter here
		"hh 'oclock", // unterminated quote
	} {
		if v.Evaluate(present(bad)) {
			t.Fatalf("expected %q rejected", bad)
		}
	}
	if v.Evaluate(keygate.Absent()) {
		t.Fatalf("expected absent rejected")
	}
}
