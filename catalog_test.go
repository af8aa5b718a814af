package keygate_test

import (
	"strings"
	"sync"
	"testing"

	keygate "github.com/keygate/keygate"
	g "github.com/keygate/keygate/dsl"
)

func TestCatalogBuilder_DuplicateWarns(t *testing.T) {
	b := keygate.NewCatalogBuilder()
	b.Register("wifi_use_static_ip", g.Bool())
	b.Register("wifi_use_static_ip", g.Bool())
	c := b.Build()

	if c.Len() != 1 {
		t.Fatalf("expected one entry after dup registration, got %d", c.Len())
	}
	warns := c.Warnings()
	if len(warns) != 1 || !strings.Contains(warns[0], "wifi_use_static_ip") {
		t.Fatalf("expected a duplicate warning naming the key, got %v", warns)
	}
	// last write wins: the entry is still usable
	if v, ok := c.Lookup("wifi_use_static_ip"); !ok || !v.Evaluate(keygate.StringValue("true")) {
		t.Fatalf("expected surviving validator to work")
	}
}

func TestCatalogBuilder_DropsInvalidRegistrations(t *testing.T) {
	b := keygate.NewCatalogBuilder()
	b.Register("", g.Bool())
	b.Register("ok", nil)
	c := b.Build()

	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d entries", c.Len())
	}
	if len(c.Warnings()) != 2 {
		t.Fatalf("expected two warnings, got %v", c.Warnings())
	}
}

func TestCatalog_BuildSnapshots(t *testing.T) {
	b := keygate.NewCatalogBuilder()
	b.Register("a", g.Bool())
	c := b.Build()

	// registrations after Build must not leak into the snapshot
	b.Register("b", g.Bool())
	if _, ok := c.Lookup("b"); ok {
		t.Fatalf("catalog mutated after Build")
	}
	if c.Len() != 1 {
		t.Fatalf("expected snapshot of one entry, got %d", c.Len())
	}
}

func TestCatalog_KeysSorted(t *testing.T) {
	b := keygate.NewCatalogBuilder()
	b.Register("zeta", g.Bool())
	b.Register("alpha", g.Bool())
	b.Register("mid", g.Bool())
	c := b.Build()

	keys := c.Keys()
	if len(keys) != 3 || keys[0] != "alpha" || keys[1] != "mid" || keys[2] != "zeta" {
		t.Fatalf("expected sorted keys, got %v", keys)
	}
}

func TestCatalog_ConcurrentLookup(t *testing.T) {
	b := keygate.NewCatalogBuilder()
	b.Register("dim_screen", g.Bool())
	r := keygate.NewRegistry(b.Build())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if d := r.Accept("dim_screen", keygate.StringValue("false")); d != keygate.Allowed {
					t.Errorf("unexpected decision %v", d)
					return
				}
			}
		}()
	}
	wg.Wait()
}
