package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/config"
)

const (
	tokenCookie = "token"
	userCookie  = "user"
)

// User is the identity slice of a session.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Session is the authenticated state carried by a browser. The token is the
// backend-issued JWT; the gateway never mints its own.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// IsAuthenticated reports whether the session holds a token.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// IsAdmin reports whether the session's role grants the admin surface. This
// only gates the UI; the backend enforces authorization on every call.
func (s *Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.User.Role == "admin"
}

// Store reads and writes the session of the current request.
type Store interface {
	Get(c *gin.Context) *Session
	Set(c *gin.Context, s *Session)
	Clear(c *gin.Context)
}

// CookieStore persists sessions in a pair of cookies: "token" holds the raw
// JWT, "user" the serialized identity. Both expire together.
type CookieStore struct {
	domain string
	maxAge int
	secure bool
}

// NewCookieStore creates a store from the session configuration.
func NewCookieStore(cfg *config.SessionConfig) *CookieStore {
	return &CookieStore{
		domain: cfg.CookieDomain,
		maxAge: cfg.CookieExpiryDays * 24 * 60 * 60,
		secure: cfg.CookieSecure,
	}
}

// Get reconstructs the session from the request's cookies. A missing or
// expired token yields nil. When the user cookie is absent or unreadable the
// identity is re-derived from the token's claims.
func (cs *CookieStore) Get(c *gin.Context) *Session {
	token, err := c.Cookie(tokenCookie)
	if err != nil || token == "" {
		return nil
	}

	claims, err := ParseClaims(token)
	if err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil
	}

	s := &Session{Token: token}
	if raw, err := c.Cookie(userCookie); err == nil && raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.User); err == nil && s.User.ID != "" {
			return s
		}
	}

	s.User = User{ID: claims.UserID(), Name: claims.Name, Role: claims.Role}
	return s
}

// Set writes the session cookies.
func (cs *CookieStore) Set(c *gin.Context, s *Session) {
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		// User is a plain struct; this cannot realistically fail.
		userJSON = []byte("{}")
	}
	// gin URL-encodes cookie values, so the JSON survives the round trip.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, s.Token, cs.maxAge, "/", cs.domain, cs.secure, true)
	c.SetCookie(userCookie, string(userJSON), cs.maxAge, "/", cs.domain, cs.secure, false)
}

// Clear removes the session cookies.
func (cs *CookieStore) Clear(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", cs.domain, cs.secure, true)
	c.SetCookie(userCookie, "", -1, "/", cs.domain, cs.secure, false)
}
