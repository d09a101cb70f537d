package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateVehicleRequest is the vehicle registration payload.
type CreateVehicleRequest struct {
	LicensePlate string `json:"licensePlate"`
	VehicleType  string `json:"vehicleType"`
	Make         string `json:"make"`
	IsRegular    bool   `json:"isRegular"`
}

// AdminVehicleQuery filters the admin vehicle listing.
type AdminVehicleQuery struct {
	Page        int
	Limit       int
	Sort        string
	VehicleType string
	IsRegular   *bool
}

// CreateVehicle registers a vehicle for the authenticated user.
func (c *Client) CreateVehicle(ctx context.Context, token string, req CreateVehicleRequest) (*Vehicle, error) {
	var vehicle Vehicle
	if _, err := c.do(ctx, http.MethodPost, "/vehicles", token, req, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// VehiclesByOwner lists the vehicles registered by one user.
func (c *Client) VehiclesByOwner(ctx context.Context, token, ownerID string) ([]Vehicle, error) {
	var data struct {
		Vehicles []Vehicle `json:"vehicles"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/vehicles/owner/"+url.PathEscape(ownerID), token, nil, &data); err != nil {
		return nil, err
	}
	return data.Vehicles, nil
}

// AdminVehicles lists all vehicles with paging and filters. Returns the
// vehicles and the backend's total count.
func (c *Client) AdminVehicles(ctx context.Context, token string, q AdminVehicleQuery) ([]Vehicle, int, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.VehicleType != "" {
		params.Set("vehicleType", q.VehicleType)
	}
	if q.IsRegular != nil {
		params.Set("isRegular", strconv.FormatBool(*q.IsRegular))
	}

	path := "/vehicles/admin/all"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var vehicles []Vehicle
	env, err := c.do(ctx, http.MethodGet, path, token, nil, &vehicles)
	if err != nil {
		return nil, 0, err
	}
	return vehicles, env.Count, nil
}

// UpdateVehicle patches a vehicle (admin activate/deactivate among others).
func (c *Client) UpdateVehicle(ctx context.Context, token, id string, updates map[string]any) (*Vehicle, error) {
	var vehicle Vehicle
	if _, err := c.do(ctx, http.MethodPatch, "/vehicles/"+url.PathEscape(id), token, updates, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// DeleteVehicle removes a vehicle record.
func (c *Client) DeleteVehicle(ctx context.Context, token, id string) error {
	_, err := c.doRaw(ctx, http.MethodDelete, "/vehicles/"+url.PathEscape(id), token, nil)
	return err
}
