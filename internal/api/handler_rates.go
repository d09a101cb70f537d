package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/display"
	"parking-zone-gateway/internal/mw"
	"parking-zone-gateway/internal/upstream"
)

// Rates returns the pricing table fanned out per vehicle type, so the
// client renders one row per (rate, vehicle type) pair.
func (h *Handler) Rates(c *gin.Context) {
	s := mw.Session(c)
	rates, err := h.client.ListRates(c.Request.Context(), s.Token)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": display.FanOutRates(rates)})
}

// GetRate returns a single rate record unprojected, for the admin edit form.
func (h *Handler) GetRate(c *gin.Context) {
	s := mw.Session(c)
	rate, err := h.client.GetRate(c.Request.Context(), s.Token, c.Param("id"))
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

// CreateRate creates a pricing rate. Leaving vehicleType unset creates a
// base rate that the read side fans out.
func (h *Handler) CreateRate(c *gin.Context) {
	var req upstream.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	normalizeRateVehicleType(&req)

	s := mw.Session(c)
	rate, err := h.client.CreateRate(c.Request.Context(), s.Token, req)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rate)
}

// UpdateRate replaces a pricing rate.
func (h *Handler) UpdateRate(c *gin.Context) {
	var req upstream.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	normalizeRateVehicleType(&req)

	s := mw.Session(c)
	rate, err := h.client.UpdateRate(c.Request.Context(), s.Token, c.Param("id"), req)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

// DeleteRate removes a pricing rate.
func (h *Handler) DeleteRate(c *gin.Context) {
	s := mw.Session(c)
	if err := h.client.DeleteRate(c.Request.Context(), s.Token, c.Param("id")); err != nil {
		upstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func normalizeRateVehicleType(req *upstream.RateRequest) {
	if req.VehicleType != nil && *req.VehicleType != "" {
		normalized := display.NormalizeVehicleType(*req.VehicleType)
		req.VehicleType = &normalized
	}
}
