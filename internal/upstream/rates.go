package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// RateRequest is the create/update payload for a pricing rate. A nil
// VehicleType creates a base rate.
type RateRequest struct {
	Type        string  `json:"type"`
	VehicleType *string `json:"vehicleType,omitempty"`
	HourlyRate  float64 `json:"hourlyRate"`
	Description string  `json:"description"`
}

// ListRates fetches every pricing rate.
func (c *Client) ListRates(ctx context.Context, token string) ([]Rate, error) {
	var rates []Rate
	if _, err := c.do(ctx, http.MethodGet, "/parking-rates", token, nil, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// GetRate fetches a single rate.
func (c *Client) GetRate(ctx context.Context, token, id string) (*Rate, error) {
	var rate Rate
	if _, err := c.do(ctx, http.MethodGet, "/parking-rates/"+url.PathEscape(id), token, nil, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// CreateRate creates a pricing rate.
func (c *Client) CreateRate(ctx context.Context, token string, req RateRequest) (*Rate, error) {
	var rate Rate
	if _, err := c.do(ctx, http.MethodPost, "/parking-rates", token, req, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// UpdateRate replaces a pricing rate.
func (c *Client) UpdateRate(ctx context.Context, token, id string, req RateRequest) (*Rate, error) {
	var rate Rate
	if _, err := c.do(ctx, http.MethodPut, "/parking-rates/"+url.PathEscape(id), token, req, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// DeleteRate removes a pricing rate.
func (c *Client) DeleteRate(ctx context.Context, token, id string) error {
	_, err := c.doRaw(ctx, http.MethodDelete, "/parking-rates/"+url.PathEscape(id), token, nil)
	return err
}
