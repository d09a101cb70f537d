package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/display"
	"parking-zone-gateway/internal/mw"
	"parking-zone-gateway/internal/upstream"
)

// CreateVehicle registers a vehicle under the authenticated user.
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req upstream.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.VehicleType = display.NormalizeVehicleType(req.VehicleType)

	s := mw.Session(c)
	vehicle, err := h.client.CreateVehicle(c.Request.Context(), s.Token, req)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// MyVehicles lists the vehicles owned by the authenticated user.
func (h *Handler) MyVehicles(c *gin.Context) {
	s := mw.Session(c)
	vehicles, err := h.client.VehiclesByOwner(c.Request.Context(), s.Token, s.User.ID)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// AdminVehicles lists all vehicles with paging, sorting and filters.
func (h *Handler) AdminVehicles(c *gin.Context) {
	q := upstream.AdminVehicleQuery{
		Sort:        c.Query("sort"),
		VehicleType: c.Query("vehicleType"),
	}
	if v := c.Query("page"); v != "" {
		q.Page, _ = strconv.Atoi(v)
	}
	if v := c.Query("limit"); v != "" {
		q.Limit, _ = strconv.Atoi(v)
	}
	if v := c.Query("isRegular"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "isRegular must be a boolean"})
			return
		}
		q.IsRegular = &b
	}

	s := mw.Session(c)
	vehicles, count, err := h.client.AdminVehicles(c.Request.Context(), s.Token, q)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles, "count": count})
}

// UpdateVehicle forwards a partial vehicle update. The admin console uses
// this for activate/deactivate toggles.
func (h *Handler) UpdateVehicle(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if v, ok := updates["vehicleType"].(string); ok {
		updates["vehicleType"] = display.NormalizeVehicleType(v)
	}

	s := mw.Session(c)
	vehicle, err := h.client.UpdateVehicle(c.Request.Context(), s.Token, c.Param("id"), updates)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle removes a vehicle record.
func (h *Handler) DeleteVehicle(c *gin.Context) {
	s := mw.Session(c)
	if err := h.client.DeleteVehicle(c.Request.Context(), s.Token, c.Param("id")); err != nil {
		upstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
