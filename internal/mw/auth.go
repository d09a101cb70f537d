package mw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/session"
)

const sessionKey = "session"

// RequireSession rejects requests that carry no valid session cookie.
// The session is stored in the gin context for handlers to pick up.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := store.Get(c)
		if s == nil || !s.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// RequireAdmin must be mounted after RequireSession. The admin role is a
// routing convenience only, the backend enforces authorization on every
// proxied call.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := Session(c)
		if s == nil || !s.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// Session returns the session stored by RequireSession, or nil.
func Session(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}
