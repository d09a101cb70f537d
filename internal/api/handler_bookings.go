package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"parking-zone-gateway/internal/display"
	"parking-zone-gateway/internal/mw"
	"parking-zone-gateway/internal/upstream"
)

// bookingView decorates a parking session with its progress projection so
// the client can render the booked → entered → exited tracker directly.
type bookingView struct {
	upstream.Booking
	Progress display.Progress `json:"progress"`
	Steps    []display.Status `json:"steps"`
}

func newBookingView(b upstream.Booking, now time.Time) bookingView {
	p := display.BookingProgress(&b, now)
	steps := make([]display.Status, 3)
	for i := range steps {
		steps[i] = display.StepStatus(i+1, p)
	}
	return bookingView{Booking: b, Progress: p, Steps: steps}
}

// MyBookings lists the authenticated user's parking sessions with progress.
func (h *Handler) MyBookings(c *gin.Context) {
	s := mw.Session(c)
	bookings, err := h.client.SessionsByUser(c.Request.Context(), s.Token, s.User.ID)
	if err != nil {
		upstreamError(c, err)
		return
	}

	now := time.Now()
	views := make([]bookingView, len(bookings))
	for i, b := range bookings {
		views[i] = newBookingView(b, now)
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

type createBookingRequest struct {
	VehicleID       string  `json:"vehicleId" binding:"required"`
	ParkingSlotID   string  `json:"parkingSlotId" binding:"required"`
	VehicleType     string  `json:"vehicleType" binding:"required"`
	SlotVehicleType string  `json:"slotVehicleType"`
	Amount          float64 `json:"amount"`
}

// CreateBooking books a slot. The vehicle/slot type check runs before the
// backend is contacted; a mismatch never leaves the gateway.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
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
	booking, err := h.client.CreateSession(c.Request.Context(), s.Token, upstream.CreateSessionRequest{
		VehicleID:     req.VehicleID,
		ParkingSlotID: req.ParkingSlotID,
		Amount:        req.Amount,
	})
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBookingView(*booking, time.Now()))
}

// AdminBookings lists every parking session.
func (h *Handler) AdminBookings(c *gin.Context) {
	s := mw.Session(c)
	bookings, count, err := h.client.ListSessions(c.Request.Context(), s.Token)
	if err != nil {
		upstreamError(c, err)
		return
	}

	now := time.Now()
	views := make([]bookingView, len(bookings))
	for i, b := range bookings {
		views[i] = newBookingView(b, now)
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views, "count": count})
}

// CompleteBooking marks a session completed.
func (h *Handler) CompleteBooking(c *gin.Context) {
	s := mw.Session(c)
	booking, err := h.client.CompleteSession(c.Request.Context(), s.Token, c.Param("id"))
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBookingView(*booking, time.Now()))
}

// CancelBooking cancels a session.
func (h *Handler) CancelBooking(c *gin.Context) {
	s := mw.Session(c)
	booking, err := h.client.CancelSession(c.Request.Context(), s.Token, c.Param("id"))
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBookingView(*booking, time.Now()))
}
