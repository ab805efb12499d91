package lastfm

import (
	"context"
	"fmt"
)

// sessionState tracks progress through the authentication lifecycle.
// A Session only ever moves forward: once a session key is held it
// never reverts to unauthenticated.
type sessionState int

const (
	stateUnauthenticated sessionState = iota
	stateTokenPending
	stateAuthenticated
)

// Session is the identity plus auth-state value for one Last.fm user
// context.
//
// It owns a Client and drives the two authentication flows the service
// supports: direct credential exchange (AuthenticateDirect) and the
// browser-delegated token flow (WebAuthURL then CompleteWebAuth).
// Each operation performs at most one network round trip.
//
// A Session's mutable state (session key, pending token) is not safe
// for concurrent mutation; callers running auth attempts from several
// goroutines must serialize them. Read-only use after authentication
// is fine.
type Session struct {
	client       *Client
	state        sessionState
	pendingToken string
	username     string
}

// Record is the serializable form of a Session: the three fields an
// embedding application stores to resume an authenticated session
// later. The pending auth token is deliberately absent; it is
// short-lived and not part of a session's identity.
type Record struct {
	APIKey     string `json:"api_key"`
	APISecret  string `json:"api_secret"`
	SessionKey string `json:"session_key,omitempty"`
}

// NewSession creates a Session from client configuration.
//
// Returns ErrInvalidCredentials if the API key or secret is missing.
// If cfg.SessionKey is set the Session starts out authenticated, which
// is how a stored Record is resumed.
func NewSession(cfg Config) (*Session, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	s := &Session{client: client}
	if cfg.SessionKey != "" {
		s.state = stateAuthenticated
	}
	return s, nil
}

// ResumeSession reconstructs a Session from a stored Record.
func ResumeSession(rec Record) (*Session, error) {
	return NewSession(Config{
		APIKey:     rec.APIKey,
		APISecret:  rec.APISecret,
		SessionKey: rec.SessionKey,
	})
}

// Client returns the underlying API client, for issuing method calls
// with this session's identity.
func (s *Session) Client() *Client {
	return s.client
}

// AuthenticateDirect authenticates with a username and password in a
// single exchange, without the browser hand-off.
//
// passwordHash must be the MD5 hex digest of the user's password; the
// wire contract hashes the concatenation of username and the already
// hashed password, never the raw password. On success the Session
// becomes authenticated. On failure the prior state is left untouched.
func (s *Session) AuthenticateDirect(ctx context.Context, username, passwordHash string) error {
	authToken := md5Hex(username + passwordHash)

	params := Params{
		"username":  username,
		"authToken": authToken,
	}
	doc, err := s.client.call(ctx, "auth.getMobileSession", params, callOptions{sign: true})
	if err != nil {
		return err
	}

	return s.adoptSessionKey(doc)
}

// WebAuthURL obtains a fresh auth token from the service and returns
// the URL the end user must visit to approve it.
//
// The token is held as the Session's pending token, overwriting any
// previous one; after the user approves out-of-band, CompleteWebAuth
// exchanges it for a session key. The token request itself is the one
// unsigned call in the protocol's auth surface.
func (s *Session) WebAuthURL(ctx context.Context) (string, error) {
	doc, err := s.client.call(ctx, "auth.getToken", nil, callOptions{})
	if err != nil {
		return "", err
	}

	token, err := doc.Extract("token", 0)
	if err != nil {
		return "", err
	}

	s.pendingToken = token
	if s.state == stateUnauthenticated {
		s.state = stateTokenPending
	}

	// The exact shape matters: the service's consent page is keyed on
	// these two query parameters.
	return fmt.Sprintf("%s?api_key=%s&token=%s", AuthBaseURL, s.client.apiKey, token), nil
}

// CompleteWebAuth exchanges the pending auth token for a session key
// after the user has approved it at the WebAuthURL page.
//
// Returns ErrNoPendingToken if WebAuthURL has not produced a token
// first. Returns *Error (typically code 14, unauthorized token, or 15,
// expired token) if the service refuses the exchange; the pending
// token and state are left as they were so the caller may retry after
// the user approves.
func (s *Session) CompleteWebAuth(ctx context.Context) error {
	if s.pendingToken == "" {
		return ErrNoPendingToken
	}

	params := Params{"token": s.pendingToken}
	doc, err := s.client.call(ctx, "auth.getSession", params, callOptions{sign: true})
	if err != nil {
		return err
	}

	if err := s.adoptSessionKey(doc); err != nil {
		return err
	}
	s.pendingToken = ""
	return nil
}

// adoptSessionKey pulls the session payload out of a successful auth
// response and moves the Session to authenticated.
func (s *Session) adoptSessionKey(doc *Document) error {
	key, err := doc.Extract("key", 0)
	if err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("lastfm: service returned an empty session key")
	}

	// The username element is informational; older API method variants
	// omit it.
	if name, err := doc.Extract("name", 0); err == nil {
		s.username = name
	}

	s.client.SetSessionKey(key)
	s.state = stateAuthenticated
	return nil
}

// IsAuthenticated reports whether a session key is held. A pending web
// auth token does not count.
func (s *Session) IsAuthenticated() bool {
	return s.state == stateAuthenticated
}

// SessionKey returns the session key, empty until authenticated.
func (s *Session) SessionKey() string {
	return s.client.SessionKey()
}

// Username returns the username reported by the service during
// authentication, empty for resumed or unauthenticated sessions.
func (s *Session) Username() string {
	return s.username
}

// Export returns the Session's serializable three-field record.
func (s *Session) Export() Record {
	return Record{
		APIKey:     s.client.apiKey,
		APISecret:  s.client.apiSecret,
		SessionKey: s.client.sessionKey,
	}
}

// Equal reports whether two Sessions share the same identity, defined
// as equal (API key, API secret, session key). A pending auth token is
// transient bootstrap state and is excluded.
func (s *Session) Equal(other *Session) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.client.apiKey == other.client.apiKey &&
		s.client.apiSecret == other.client.apiSecret &&
		s.client.sessionKey == other.client.sessionKey
}
