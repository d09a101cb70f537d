package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/mw"
	"parking-zone-gateway/internal/upstream"
)

// CreateBlock creates a block and its slots. Floor and totalSlots travel as
// strings; the backend owns their validation.
func (h *Handler) CreateBlock(c *gin.Context) {
	var req upstream.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := mw.Session(c)
	block, err := h.client.CreateBlock(c.Request.Context(), s.Token, req)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}
