package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/session"
	"parking-zone-gateway/internal/store"
	"parking-zone-gateway/internal/upstream"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	client   *upstream.Client
	sessions session.Store
	store    store.Store
	webpush  *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(client *upstream.Client, sessions session.Store, s store.Store, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		client:   client,
		sessions: sessions,
		store:    s,
		webpush:  webpushOptions,
	}
}

// upstreamError writes the backend's rejection through to the caller. The
// gateway never rewrites backend error semantics; it only maps the transport
// failure case to 502.
func upstreamError(c *gin.Context, err error) {
	if errors.Is(err, upstream.ErrEmailNotVerified) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":                 upstream.EmailNotVerifiedMessage,
			"verification_required": true,
		})
		return
	}

	var ue *upstream.Error
	if errors.As(err, &ue) {
		c.JSON(ue.StatusCode, gin.H{"error": ue.Message})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": "parking backend is unreachable"})
}
