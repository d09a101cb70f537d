package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// ListSlots fetches every parking slot. The result is flat; grouping for
// display is the caller's concern.
func (c *Client) ListSlots(ctx context.Context, token string) ([]Slot, error) {
	var slots []Slot
	if _, err := c.do(ctx, http.MethodGet, "/parking-slots", token, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateSessionRequest is the booking creation payload.
type CreateSessionRequest struct {
	VehicleID     string  `json:"vehicleId"`
	ParkingSlotID string  `json:"parkingSlotId"`
	Amount        float64 `json:"amount"`
}

// ListSessions fetches all parking sessions (admin view). Returns the
// sessions and the backend's total count.
func (c *Client) ListSessions(ctx context.Context, token string) ([]Booking, int, error) {
	var sessions []Booking
	env, err := c.do(ctx, http.MethodGet, "/parking-sessions", token, nil, &sessions)
	if err != nil {
		return nil, 0, err
	}
	return sessions, env.Count, nil
}

// SessionsByUser fetches one user's bookings.
func (c *Client) SessionsByUser(ctx context.Context, token, userID string) ([]Booking, error) {
	var sessions []Booking
	if _, err := c.do(ctx, http.MethodGet, "/parking-sessions/user/"+url.PathEscape(userID), token, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateSession books a slot. Availability races and double-booking are the
// backend's to reject; its answer is final.
func (c *Client) CreateSession(ctx context.Context, token string, req CreateSessionRequest) (*Booking, error) {
	var booking Booking
	if _, err := c.do(ctx, http.MethodPost, "/parking-sessions", token, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CompleteSession marks a session completed.
func (c *Client) CompleteSession(ctx context.Context, token, id string) (*Booking, error) {
	var booking Booking
	if _, err := c.do(ctx, http.MethodPost, "/parking-sessions/"+url.PathEscape(id)+"/complete", token, struct{}{}, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelSession cancels a session.
func (c *Client) CancelSession(ctx context.Context, token, id string) (*Booking, error) {
	var booking Booking
	if _, err := c.do(ctx, http.MethodPost, "/parking-sessions/"+url.PathEscape(id)+"/cancel", token, struct{}{}, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// VerifyQR submits a scanned QR payload for entry or exit verification.
func (c *Client) VerifyQR(ctx context.Context, token, qrCode, action string) (*QRVerification, error) {
	payload := map[string]string{"qrCode": qrCode, "action": action}
	var result QRVerification
	env, err := c.do(ctx, http.MethodPost, "/parking-sessions/verify-qr", token, payload, &result)
	if err != nil {
		return nil, err
	}
	if result.Message == "" {
		result.Message = env.Message
	}
	return &result, nil
}

// CreateBlockRequest is the admin block creation payload.
type CreateBlockRequest struct {
	BlockName        string `json:"blockName"`
	BlockDescription string `json:"blockDescription"`
	Floor            string `json:"floor"`
	TotalSlots       string `json:"totalSlots"`
}

// CreateBlock creates a parking block with its slots.
func (c *Client) CreateBlock(ctx context.Context, token string, req CreateBlockRequest) (*Block, error) {
	var block Block
	if _, err := c.do(ctx, http.MethodPost, "/blocks/", token, req, &block); err != nil {
		return nil, err
	}
	return &block, nil
}
