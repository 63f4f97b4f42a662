package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultHTTPSConfig(t *testing.T) {
	config := DefaultHTTPSConfig()

	if config == nil {
		t.Fatal("expected non-nil config")
	}

	if config.MinTLSVersion != TLS12 {
		t.Errorf("expected MinTLSVersion TLS12, got %d", config.MinTLSVersion)
	}
	if config.MaxTLSVersion != TLS13 {
		t.Errorf("expected MaxTLSVersion TLS13, got %d", config.MaxTLSVersion)
	}
	if len(config.CipherSuites) == 0 {
		t.Error("expected CipherSuites to be set")
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("expected Timeout 30s, got %v", config.Timeout)
	}
	if config.IdleConnTimeout != 90*time.Second {
		t.Errorf("expected IdleConnTimeout 90s, got %v", config.IdleConnTimeout)
	}
	if config.MaxRetries != 0 {
		t.Errorf("expected no retries by default, got %d", config.MaxRetries)
	}
	if config.MaxResponseBytes != DefaultMaxResponseBytes {
		t.Errorf("expected MaxResponseBytes %d, got %d", DefaultMaxResponseBytes, config.MaxResponseBytes)
	}
}

func TestRecommendedTLS12CipherSuites(t *testing.T) {
	for _, suite := range RecommendedTLS12CipherSuites {
		if tls.CipherSuiteName(suite) == "" {
			t.Errorf("unknown cipher suite: %d", suite)
		}
	}
}

func TestNewHTTPSClient_NilConfig(t *testing.T) {
	client := NewHTTPSClient(nil)

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.client == nil {
		t.Error("expected http.Client to be initialized")
	}
	if client.config == nil {
		t.Error("expected config to be set to default")
	}
}

func TestNewHTTPSClient_CustomConfig(t *testing.T) {
	client := NewHTTPSClient(&HTTPSConfig{
		MinTLSVersion: TLS13,
		MaxTLSVersion: TLS13,
		Timeout:       60 * time.Second,
	})

	if client.config.MinTLSVersion != TLS13 {
		t.Error("expected custom MinTLSVersion")
	}
	if client.client.Timeout != 60*time.Second {
		t.Error("expected custom Timeout")
	}
}

func TestHTTPSClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "text/html" {
			t.Errorf("expected content-type 'text/html', got '%s'", ct)
		}
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("expected User-Agent %q, got %q", DefaultUserAgent, ua)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "<Request/>" {
			t.Errorf("unexpected request body: %s", body)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<Response/>"))
	}))
	defer server.Close()

	client := NewHTTPSClient(nil)

	resp, err := client.Post(context.Background(), server.URL, []byte("<Request/>"), "text/html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Reason != "OK" {
		t.Errorf("expected reason OK, got %q", resp.Reason)
	}
	if string(resp.Body) != "<Response/>" {
		t.Errorf("unexpected response: %s", resp.Body)
	}
}

func TestHTTPSClient_Post_ErrorStatusIsNotAnError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewHTTPSClient(&HTTPSConfig{MaxRetries: 3, RetryInterval: time.Millisecond})

	resp, err := client.Post(context.Background(), server.URL, []byte("<Request/>"), "text/html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
	if resp.Reason != "Internal Server Error" {
		t.Errorf("unexpected reason %q", resp.Reason)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected a single attempt for an HTTP status, got %d", n)
	}
}

func TestHTTPSClient_Post_RetriesConnectionFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Error("hijacking not supported")
				return
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Errorf("hijack: %v", err)
				return
			}
			conn.Close()
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<Response/>"))
	}))
	defer server.Close()

	client := NewHTTPSClient(&HTTPSConfig{MaxRetries: 2, RetryInterval: time.Millisecond, Timeout: 5 * time.Second})

	resp, err := client.Post(context.Background(), server.URL, []byte("<Request/>"), "text/html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("expected 2 attempts, got %d", n)
	}
}

func TestHTTPSClient_Post_ResponseTooLarge(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	client := NewHTTPSClient(&HTTPSConfig{
		MaxResponseBytes: 16,
		MaxRetries:       3,
		RetryInterval:    time.Millisecond,
		Timeout:          5 * time.Second,
	})

	_, err := client.Post(context.Background(), server.URL, []byte("<Request/>"), "text/html")
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected an oversized response not to be retried, got %d attempts", n)
	}
}

func TestHTTPSClient_Post_ResponseAtLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(strings.Repeat("x", 16)))
	}))
	defer server.Close()

	client := NewHTTPSClient(&HTTPSConfig{MaxResponseBytes: 16, Timeout: 5 * time.Second})

	resp, err := client.Post(context.Background(), server.URL, []byte("<Request/>"), "text/html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Body) != 16 {
		t.Errorf("expected 16 bytes, got %d", len(resp.Body))
	}
}

func TestHTTPSClient_Post_InvalidURL(t *testing.T) {
	client := NewHTTPSClient(nil)

	_, err := client.Post(context.Background(), "http://invalid.invalid.invalid:99999", []byte("<Request/>"), "text/html")
	if err == nil {
		t.Error("expected error for invalid URL")
	}
}

func TestHTTPSClient_Post_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPSClient(&HTTPSConfig{
		Timeout:       10 * time.Second,
		MaxRetries:    5,
		RetryInterval: time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := client.Post(ctx, server.URL, []byte("<Request/>"), "text/html")
	if err == nil {
		t.Error("expected error for cancelled context")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("expected cancellation to stop retries")
	}
}

func TestTLSConstants(t *testing.T) {
	if TLS12 != tls.VersionTLS12 {
		t.Errorf("TLS12 constant mismatch")
	}
	if TLS13 != tls.VersionTLS13 {
		t.Errorf("TLS13 constant mismatch")
	}
}

func TestHTTPSClient_ImplementsTransport(t *testing.T) {
	var _ Transport = NewHTTPSClient(nil)
}
