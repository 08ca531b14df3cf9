package logger

import "testing"

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Format)
	}
}

func TestFields_PairsOnly(t *testing.T) {
	m := Fields(FieldOperation, "getCart", FieldCartID, "c1", "dangling")
	if len(m) != 2 {
		t.Errorf("expected 2 fields, got %d", len(m))
	}
	if m[FieldOperation] != "getCart" {
		t.Errorf("expected operation field, got %v", m[FieldOperation])
	}
}

func TestFields_NonStringKeyIgnored(t *testing.T) {
	m := Fields(42, "value", FieldProvider, "bigcommerce")
	if _, ok := m[FieldProvider]; !ok {
		t.Error("string-keyed pair should survive")
	}
	if len(m) != 1 {
		t.Errorf("expected non-string key dropped, got %v", m)
	}
}

func TestGet_FallsBackToGlobal(t *testing.T) {
	l := Get("never-registered")
	if l == nil {
		t.Fatal("Get must never return nil")
	}
	if l.component != "never-registered" {
		t.Errorf("fallback logger should carry the component tag, got %q", l.component)
	}
}

func TestGet_ReturnsRegistered(t *testing.T) {
	want := Nop().WithComponent("cache")
	Register("cache", want)
	if got := Get("cache"); got != want {
		t.Error("registered logger should be returned as-is")
	}
}
