package server

import (
	"context"
	"testing"
	"time"

	"github.com/commercekit/commercekit/logger"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %s, want 15s", cfg.ReadTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Error("CORS.AllowedOrigins is empty, want a default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate after defaults: %v", err)
	}
}

func TestConfig_Validate_BadPort(t *testing.T) {
	cfg := Config{Port: 70000}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted port 70000")
	}
}

func TestConfig_Validate_NegativeTimeout(t *testing.T) {
	cfg := Config{Port: 8080, ReadTimeout: -time.Second}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted a negative read timeout")
	}
}

func TestServer_StartStop(t *testing.T) {
	// Port 0 binds an ephemeral port.
	srv := New(Config{Port: 0, ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second}, logger.Nop())
	srv.ApplyMiddleware()

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := srv.Stop(ctx); err != nil {
		t.Errorf("Stop: %v", err)
	}
}
