package lastfm

import (
	"context"
	"net/http"
)

// Config holds client configuration.
type Config struct {
	APIKey     string       // Required: Last.fm API key
	APISecret  string       // Required: Last.fm API secret
	SessionKey string       // Optional: Session key for authenticated requests
	HTTPClient *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL    string       // Optional: Base URL for API (defaults to Last.fm API, used for testing)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client executes signed requests against the Last.fm API.
//
// A Client holds the identity tuple (API key, API secret, optional
// session key) and is the single entry point every service type uses
// to talk to the wire. Methods on Client that mutate the session key
// are not safe for concurrent use with in-flight requests.
type Client struct {
	apiKey     string
	apiSecret  string
	sessionKey string
	httpClient *http.Client
	baseURL    string
	logger     Logger

	track *TrackService
	user  *UserService
}

const (
	// DefaultBaseURL is the default Last.fm API endpoint.
	DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

	// AuthBaseURL is the page where users authorize a pending token.
	AuthBaseURL = "https://www.last.fm/api/auth/"
)

// NewClient creates a new Last.fm API client.
//
// Returns ErrInvalidCredentials if APIKey or APISecret is missing; no
// network call is ever attempted with incomplete credentials.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrInvalidCredentials
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		sessionKey: cfg.SessionKey,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}

	c.track = &TrackService{client: c}
	c.user = &UserService{client: c}

	return c, nil
}

// Track returns the track service (scrobbling, now playing, love).
func (c *Client) Track() *TrackService {
	return c.track
}

// User returns the user service (profile and listening history reads).
func (c *Client) User() *UserService {
	return c.user
}

// Request executes a single API method call and returns the parsed
// response document.
//
// The method name and API key are always injected into the parameter
// set. If the client holds a session key it is injected as "sk" and the
// request is signed regardless of the sign flag; session-bearing calls
// are always signed. Otherwise the request is signed only when sign is
// true; whether a method requires a signature is part of the method's
// documented contract, so the caller decides.
//
// Exactly one network round trip is performed. A failed envelope is
// returned as *Error; transport-level problems as *TransportError.
func (c *Client) Request(ctx context.Context, method string, params Params, sign bool) (*Document, error) {
	return c.call(ctx, method, params, callOptions{
		session: c.sessionKey != "",
		sign:    sign,
	})
}

// SetSessionKey sets the session key for authenticated requests.
func (c *Client) SetSessionKey(key string) {
	c.sessionKey = key
}

// SessionKey returns the current session key, empty if unauthenticated.
func (c *Client) SessionKey() string {
	return c.sessionKey
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
