package featureflags

import "testing"

func TestEnabled_GlobalValues(t *testing.T) {
	m := NewManager("verified_badges=on,legacy_search=off,price_labels=true,beta_banner=false,map_view=1,dark_mode=0")

	for _, name := range []string{"verified_badges", "price_labels", "map_view"} {
		if !m.Enabled(name, 7) {
			t.Fatalf("flag %q should be enabled", name)
		}
	}
	for _, name := range []string{"legacy_search", "beta_banner", "dark_mode"} {
		if m.Enabled(name, 7) {
			t.Fatalf("flag %q should be disabled", name)
		}
	}
}

func TestEnabled_Rollout(t *testing.T) {
	m := NewManager("full=100%,closed=0%,canary=25%")

	if !m.Enabled("full", 1) {
		t.Fatal("100% rollout should always be enabled")
	}
	if m.Enabled("closed", 1) {
		t.Fatal("0% rollout should always be disabled")
	}

	first := m.Enabled("canary", 42)
	for i := 0; i < 5; i++ {
		if got := m.Enabled("canary", 42); got != first {
			t.Fatal("rollout evaluation must be deterministic per user")
		}
	}

	if m.Enabled("canary", 0) {
		t.Fatal("anonymous users must stay out of partial rollouts")
	}
}

func TestEnabled_UnknownAndGarbageValues(t *testing.T) {
	m := NewManager("weird=maybe,pct=banana%")

	if m.Enabled("weird", 1) || m.Enabled("pct", 1) || m.Enabled("missing", 1) {
		t.Fatal("unparseable or unknown flags must evaluate false")
	}
	var nilManager *Manager
	if nilManager.Enabled("anything", 1) {
		t.Fatal("nil manager must evaluate false")
	}
}

func TestRawAndSnapshot(t *testing.T) {
	m := NewManager(" broken , verified_badges=on, price_labels = 20% ,old=off ")

	raw := m.Raw()
	if len(raw) != 3 {
		t.Fatalf("expected 3 parsed flags, got %d", len(raw))
	}
	if raw["verified_badges"] != "on" || raw["price_labels"] != "20%" || raw["old"] != "off" {
		t.Fatalf("unexpected raw flags: %#v", raw)
	}

	snap := m.Snapshot(123)
	if len(snap) != 3 {
		t.Fatalf("expected snapshot size 3, got %d", len(snap))
	}
	if !snap["verified_badges"] || snap["old"] {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
}
