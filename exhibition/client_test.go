package exhibition

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient(StaticToken("test-token"))

	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected baseURL %q, got %q", DefaultBaseURL, client.baseURL)
	}
	if client.assetHost != DefaultAssetHost {
		t.Errorf("expected assetHost %q, got %q", DefaultAssetHost, client.assetHost)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, client.httpClient.Timeout)
	}

	if client.Auth == nil {
		t.Error("expected Auth service to be initialized")
	}
	if client.Zones == nil {
		t.Error("expected Zones service to be initialized")
	}
	if client.Stalls == nil {
		t.Error("expected Stalls service to be initialized")
	}
	if client.Images == nil {
		t.Error("expected Images service to be initialized")
	}
}

func TestNewClient_WithOptions(t *testing.T) {
	customClient := &http.Client{Timeout: 60 * time.Second}
	customURL := "https://custom.api.io"

	client := NewClient(nil,
		WithBaseURL(customURL),
		WithHTTPClient(customClient),
		WithAssetHost("https://assets.custom.io"),
	)

	if client.baseURL != customURL {
		t.Errorf("expected baseURL %q, got %q", customURL, client.baseURL)
	}
	if client.assetHost != "https://assets.custom.io" {
		t.Errorf("expected custom asset host, got %q", client.assetHost)
	}
	if client.httpClient != customClient {
		t.Error("expected custom HTTP client to be set")
	}
}

func TestNewClient_WithTimeout(t *testing.T) {
	client := NewClient(nil, WithTimeout(5*time.Second))

	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", client.httpClient.Timeout)
	}
}

func TestClient_NilTokenSource(t *testing.T) {
	client := NewClient(nil)
	if got := client.token(); got != "" {
		t.Errorf("expected empty token for nil source, got %q", got)
	}
}

// newTestServer creates a test server and client for testing.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := NewClient(StaticToken("test-token"),
		WithBaseURL(server.URL),
		WithAssetHost(server.URL),
	)
	t.Cleanup(server.Close)
	return server, client
}
