package spotify

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds client configuration.
type Config struct {
	ClientID     string // Required: Spotify application client id
	ClientSecret string // Required: Spotify application client secret
	HTTPClient   Doer   // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL      string // Optional: Web API base URL (defaults to DefaultBaseURL, used for testing)
	TokenURL     string // Optional: Accounts token endpoint (defaults to DefaultTokenURL)
	Logger       Logger // Optional: Logger interface for request diagnostics
}

// Doer is the subset of *http.Client used by the client. Any transport
// with the same signature can be injected.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Spotify Web API operations.
type Client struct {
	clientID     string
	clientSecret string
	httpClient   Doer
	baseURL      string
	tokenURL     string
	logger       Logger

	auth    *AuthService
	catalog *CatalogService
}

const (
	// DefaultBaseURL is the default Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com"

	// DefaultTokenURL is the default Spotify Accounts token endpoint.
	DefaultTokenURL = "https://accounts.spotify.com/api/token"
)

// NewClient creates a new Spotify Web API client.
//
// Returns an error if required configuration (ClientID, ClientSecret) is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("%w: ClientID is required", ErrInvalidConfig)
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: ClientSecret is required", ErrInvalidConfig)
	}

	var httpClient Doer = http.DefaultClient
	if cfg.HTTPClient != nil {
		httpClient = cfg.HTTPClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	c := &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(baseURL, "/"),
		tokenURL:     tokenURL,
		logger:       cfg.Logger,
	}

	c.auth = &AuthService{client: c}
	c.catalog = &CatalogService{client: c}

	return c, nil
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService {
	return c.auth
}

// Catalog returns the catalog lookup service.
func (c *Client) Catalog() *CatalogService {
	return c.catalog
}

// BaseURL returns the Web API base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
