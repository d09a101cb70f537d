package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/mw"
	"parking-zone-gateway/internal/session"
	"parking-zone-gateway/internal/upstream"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the backend and establishes the session
// cookies on success.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.client.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		upstreamError(c, err)
		return
	}

	h.setSession(c, result)
	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

// Register creates an account. No session is established; the backend
// requires email verification first.
func (h *Handler) Register(c *gin.Context) {
	var req upstream.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.client.Register(c.Request.Context(), req)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": result.Message, "user": result.User})
}

type verifyEmailRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// VerifyEmail completes registration. The backend returns a token on
// success, so verification doubles as the first login.
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.client.VerifyEmail(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		upstreamError(c, err)
		return
	}

	h.setSession(c, result)
	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

type resendVerificationRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResendVerification asks the backend to send a fresh OTP.
func (h *Handler) ResendVerification(c *gin.Context) {
	var req resendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.client.ResendVerification(c.Request.Context(), req.Email); err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "verification email sent"})
}

// Profile returns the authenticated user's account record.
func (h *Handler) Profile(c *gin.Context) {
	s := mw.Session(c)
	user, err := h.client.Profile(c.Request.Context(), s.Token)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile forwards a partial profile update.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := mw.Session(c)
	user, err := h.client.UpdateProfile(c.Request.Context(), s.Token, updates)
	if err != nil {
		upstreamError(c, err)
		return
	}

	// Keep the user cookie in step with the backend record.
	h.sessions.Set(c, &session.Session{
		Token: s.Token,
		User:  session.User{ID: user.ID, Name: user.Name, Role: user.Role},
	})
	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookies. The backend token is stateless, so
// there is nothing to revoke upstream.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) setSession(c *gin.Context, result *upstream.AuthResult) {
	if result.Token == "" {
		return
	}
	h.sessions.Set(c, &session.Session{
		Token: result.Token,
		User: session.User{
			ID:   result.User.ID,
			Name: result.User.Name,
			Role: result.User.Role,
		},
	})
}
