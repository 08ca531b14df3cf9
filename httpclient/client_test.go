package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/resilience"
)

func TestClient_Do_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/v3/catalog/products" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("expected limit=5, got %s", r.URL.Query().Get("limit"))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []string{"p1"}})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/v3/catalog/products",
		Query:  map[string]string{"limit": "5"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(resp.Body), "p1") {
		t.Errorf("body should contain p1, got %s", resp.Body)
	}
}

func TestClient_Do_DefaultHeadersApplied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") != "token-1" {
			t.Errorf("expected auth header, got %q", r.Header.Get("X-Auth-Token"))
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected a generated request id")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Headers: map[string]string{"X-Auth-Token": "token-1"}})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"title":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	resp, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/login"})
	if !errors.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if errors.StatusCode(err) != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", errors.StatusCode(err))
	}
	if !strings.Contains(err.Error(), "Invalid credentials") {
		t.Errorf("expected backend message preserved, got %q", err.Error())
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Error("response should still carry the status code")
	}
}

func TestClient_Do_NetworkError(t *testing.T) {
	c, _ := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if !errors.IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	if !errors.IsRetryable(err) {
		t.Error("network errors should be retryable")
	}
}

func TestClient_Do_RetriesSafeMethodsOnly(t *testing.T) {
	var gets atomic.Int32
	writes := map[string]*atomic.Int32{
		http.MethodPost:   {},
		http.MethodPut:    {},
		http.MethodDelete: {},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			if gets.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
			return
		}
		writes[r.Method].Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	retry := resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		RetryIf:        errors.IsRetryable,
	}
	c, _ := New(Config{BaseURL: srv.URL, Retry: &retry})

	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("GET should succeed after retries: %v", err)
	}
	if gets.Load() != 3 {
		t.Errorf("expected 3 GET attempts, got %d", gets.Load())
	}

	for method, count := range writes {
		if _, err := c.Do(context.Background(), Request{Method: method, Path: "/"}); err == nil {
			t.Fatalf("%s should fail without retry", method)
		}
		if count.Load() != 1 {
			t.Errorf("%s must be attempted exactly once, got %d", method, count.Load())
		}
	}
}

func TestClient_New_MissingBaseURL(t *testing.T) {
	_, err := New(Config{})
	if !errors.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestGet_DecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"name": "Shoe"})
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	got, err := Get[map[string]string](context.Background(), c, "/p", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["name"] != "Shoe" {
		t.Errorf("expected Shoe, got %v", got)
	}
}
