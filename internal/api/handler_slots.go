package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/display"
	"parking-zone-gateway/internal/mw"
)

// Slots returns the full slot inventory grouped for display: vehicle type
// at the top, then block, then floor (highest first).
func (h *Handler) Slots(c *gin.Context) {
	s := mw.Session(c)
	slots, err := h.client.ListSlots(c.Request.Context(), s.Token)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, display.GroupSlots(slots))
}
