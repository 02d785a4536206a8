package exhibition

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default event-navigation API endpoint.
	DefaultBaseURL = "https://api.eventnav.sliitsesc.org"
	// DefaultAssetHost is the default image asset host.
	DefaultAssetHost = "https://assets.eventnav.sliitsesc.org"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// TokenSource supplies the bearer token attached to every request. An
// empty token means the request goes out unauthenticated, which is how
// sign-in itself is performed.
type TokenSource interface {
	AccessToken() string
}

// StaticToken is a fixed bearer token.
type StaticToken string

// AccessToken implements TokenSource.
func (t StaticToken) AccessToken() string { return string(t) }

// Client is the event-navigation admin API client.
//
// Use NewClient with a session store (or any TokenSource) so that every
// call picks up the current bearer token:
//
//	client := exhibition.NewClient(store)
//	zones, err := client.Zones.List(ctx)
type Client struct {
	tokens     TokenSource
	baseURL    string
	assetHost  string
	httpClient *http.Client

	// Services
	Auth   *AuthService
	Zones  *ZonesService
	Stalls *StallsService
	Images *ImagesService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithAssetHost sets a custom image asset host.
func WithAssetHost(url string) Option {
	return func(c *Client) {
		c.assetHost = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new API client. tokens may be nil for a client
// that only ever signs in.
func NewClient(tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		tokens:    tokens,
		baseURL:   DefaultBaseURL,
		assetHost: DefaultAssetHost,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Zones = &ZonesService{client: c}
	c.Stalls = &StallsService{client: c}
	c.Images = &ImagesService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.AccessToken()
}
