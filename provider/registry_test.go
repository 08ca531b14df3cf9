package provider

import (
	"testing"

	"github.com/commercekit/commercekit/config"
	"github.com/commercekit/commercekit/errors"
)

func TestRegistry_CreateUnknownProvider(t *testing.T) {
	r := NewRegistry()
	_, err := r.Create("nope", config.Provider{})
	if !errors.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestRegistry_RegisterAndCreate(t *testing.T) {
	r := NewRegistry()
	var gotCfg config.Provider
	r.Register("fake", func(cfg config.Provider) (Commerce, error) {
		gotCfg = cfg
		return nil, nil
	})

	cfg := config.Provider{Endpoint: "https://x", Credentials: "k"}
	if _, err := r.Create("fake", cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCfg.Endpoint != "https://x" {
		t.Errorf("factory should receive the config, got %+v", gotCfg)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("zeta", nil)
	r.Register("alpha", nil)
	names := r.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("expected sorted names, got %v", names)
	}
}
