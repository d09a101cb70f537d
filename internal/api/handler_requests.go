package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/display"
	"parking-zone-gateway/internal/mw"
	"parking-zone-gateway/internal/upstream"
)

// MyRequests lists the authenticated user's parking requests.
func (h *Handler) MyRequests(c *gin.Context) {
	s := mw.Session(c)
	requests, err := h.client.RequestsByUser(c.Request.Context(), s.Token, s.User.ID)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

type createParkingRequestRequest struct {
	VehicleID       string `json:"vehicleId" binding:"required"`
	ParkingSlotID   string `json:"parkingSlotId" binding:"required"`
	VehicleType     string `json:"vehicleType" binding:"required"`
	SlotVehicleType string `json:"slotVehicleType"`
}

// CreateRequest files a slot hold for admin approval. The same local type
// guard as booking creation applies.
func (h *Handler) CreateRequest(c *gin.Context) {
	var req createParkingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := display.CheckVehicleSlot(
		&upstream.Vehicle{VehicleType: req.VehicleType},
		&upstream.Slot{VehicleType: req.SlotVehicleType},
	); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s := mw.Session(c)
	created, err := h.client.CreateRequest(c.Request.Context(), s.Token, upstream.CreateRequestRequest{
		VehicleID:     req.VehicleID,
		ParkingSlotID: req.ParkingSlotID,
	})
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AdminRequests lists every parking request.
func (h *Handler) AdminRequests(c *gin.Context) {
	s := mw.Session(c)
	requests, err := h.client.ListRequests(c.Request.Context(), s.Token)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// ApproveRequest approves a parking request. The backend creates the
// parking session as part of the approval.
func (h *Handler) ApproveRequest(c *gin.Context) {
	s := mw.Session(c)
	req, err := h.client.ApproveRequest(c.Request.Context(), s.Token, c.Param("id"))
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

type rejectRequestRequest struct {
	Reason string `json:"reason"`
}

// RejectRequest rejects a parking request with an optional reason.
func (h *Handler) RejectRequest(c *gin.Context) {
	var body rejectRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := mw.Session(c)
	req, err := h.client.RejectRequest(c.Request.Context(), s.Token, c.Param("id"), body.Reason)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
