package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// CreateRequestRequest is the parking request creation payload.
type CreateRequestRequest struct {
	VehicleID     string `json:"vehicleId"`
	ParkingSlotID string `json:"parkingSlotId"`
}

// ListRequests fetches all parking requests (admin view).
func (c *Client) ListRequests(ctx context.Context, token string) ([]Request, error) {
	var requests []Request
	if _, err := c.do(ctx, http.MethodGet, "/parking-requests", token, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// RequestsByUser fetches one user's parking requests.
func (c *Client) RequestsByUser(ctx context.Context, token, userID string) ([]Request, error) {
	var requests []Request
	if _, err := c.do(ctx, http.MethodGet, "/parking-requests/user/"+url.PathEscape(userID), token, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// CreateRequest submits a hold on a slot pending admin approval.
func (c *Client) CreateRequest(ctx context.Context, token string, req CreateRequestRequest) (*Request, error) {
	var request Request
	if _, err := c.do(ctx, http.MethodPost, "/parking-requests", token, req, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ApproveRequest approves a pending request. The approved/rejected transition
// only ever happens here, never locally.
func (c *Client) ApproveRequest(ctx context.Context, token, id string) (*Request, error) {
	var request Request
	if _, err := c.do(ctx, http.MethodPost, "/parking-requests/"+url.PathEscape(id)+"/approve", token, struct{}{}, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// RejectRequest rejects a pending request with a reason.
func (c *Client) RejectRequest(ctx context.Context, token, id, reason string) (*Request, error) {
	payload := map[string]string{"reason": reason}
	var request Request
	if _, err := c.do(ctx, http.MethodPost, "/parking-requests/"+url.PathEscape(id)+"/reject", token, payload, &request); err != nil {
		return nil, err
	}
	return &request, nil
}
