package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-zone-gateway/config"
)

func signedToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func newStore() *CookieStore {
	return NewCookieStore(&config.SessionConfig{CookieExpiryDays: 5})
}

// runRequest drives a single gin handler and returns the recorder.
func runRequest(handler gin.HandlerFunc, cookies []*http.Cookie) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	handler(c)
	return w
}

func TestCookieStore_RoundTrip(t *testing.T) {
	store := newStore()
	token := signedToken(t, Claims{
		ID:   "u1",
		Name: "Dana",
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	// Write the session.
	w := runRequest(func(c *gin.Context) {
		store.Set(c, &Session{Token: token, User: User{ID: "u1", Name: "Dana", Role: "user"}})
	}, nil)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)

	var tokenCk, userCk *http.Cookie
	for _, ck := range cookies {
		switch ck.Name {
		case "token":
			tokenCk = ck
		case "user":
			userCk = ck
		}
	}
	require.NotNil(t, tokenCk)
	require.NotNil(t, userCk)
	assert.True(t, tokenCk.HttpOnly)
	assert.False(t, userCk.HttpOnly)
	assert.Equal(t, 5*24*60*60, tokenCk.MaxAge)

	// Read it back on a later request.
	var got *Session
	runRequest(func(c *gin.Context) {
		got = store.Get(c)
	}, cookies)

	require.NotNil(t, got)
	assert.Equal(t, token, got.Token)
	assert.Equal(t, User{ID: "u1", Name: "Dana", Role: "user"}, got.User)
	assert.True(t, got.IsAuthenticated())
	assert.False(t, got.IsAdmin())
}

func TestCookieStore_MissingToken(t *testing.T) {
	store := newStore()
	var got *Session
	runRequest(func(c *gin.Context) {
		got = store.Get(c)
	}, nil)
	assert.Nil(t, got)
}

func TestCookieStore_ExpiredTokenYieldsNil(t *testing.T) {
	store := newStore()
	token := signedToken(t, Claims{
		ID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	var got *Session
	runRequest(func(c *gin.Context) {
		got = store.Get(c)
	}, []*http.Cookie{{Name: "token", Value: token}})
	assert.Nil(t, got)
}

func TestCookieStore_IdentityFallsBackToClaims(t *testing.T) {
	store := newStore()
	token := signedToken(t, Claims{
		AltID: "u9",
		Name:  "Sam",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	// No user cookie: identity comes from the token claims.
	var got *Session
	runRequest(func(c *gin.Context) {
		got = store.Get(c)
	}, []*http.Cookie{{Name: "token", Value: token}})

	require.NotNil(t, got)
	assert.Equal(t, "u9", got.User.ID)
	assert.Equal(t, "Sam", got.User.Name)
	assert.True(t, got.IsAdmin())
}

func TestCookieStore_ClearExpiresCookies(t *testing.T) {
	store := newStore()
	w := runRequest(func(c *gin.Context) {
		store.Clear(c)
	}, nil)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, ck := range cookies {
		assert.Less(t, ck.MaxAge, 0, "cookie %s should be expired", ck.Name)
	}
}
