package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/mw"
)

type verifyQRRequest struct {
	QRCode string `json:"qrCode" binding:"required"`
	Action string `json:"action"`
}

// VerifyQR proxies a gate scan to the backend. The action defaults to
// "entry"; the backend flips the session to exit on the second scan of the
// same code.
func (h *Handler) VerifyQR(c *gin.Context) {
	var req verifyQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Action == "" {
		req.Action = "entry"
	}

	s := mw.Session(c)
	result, err := h.client.VerifyQR(c.Request.Context(), s.Token, req.QRCode, req.Action)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
