package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"parking-zone-gateway/config"
)

// EmailNotVerifiedMessage is the exact rejection the backend returns when a
// user logs in before completing OTP verification. Matching on it is the only
// signal the backend provides for this case.
const EmailNotVerifiedMessage = "Please verify your email before logging in"

// ErrEmailNotVerified marks a login rejected because the account's email is
// unverified. Callers route the user into the OTP verification flow instead
// of failing terminally.
var ErrEmailNotVerified = errors.New("email not verified")

// Error is a non-2xx response from the parking backend. The backend's message
// is authoritative and is what the user ultimately sees.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream: %d: %s", e.StatusCode, e.Message)
}

// Client is a typed HTTP client for the parking backend. It holds no session
// state: authenticated calls take the caller's bearer token explicitly.
type Client struct {
	baseURL string
	headers map[string]string
	client  *http.Client
}

// NewClient creates a client from the upstream configuration.
func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		headers: cfg.Headers,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// envelope is the backend's standard response wrapper. Endpoints that return
// a flat body (the auth endpoints) are decoded separately.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// do issues a request and decodes the enveloped payload into out. A non-2xx
// response is returned as *Error carrying the backend's message.
func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) (*envelope, error) {
	raw, err := c.doRaw(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response for %s %s: %w", method, path, err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response data for %s %s: %w", method, path, err)
		}
	}
	return &env, nil
}

// doRaw issues a request and returns the raw body of a 2xx response.
func (c *Client) doRaw(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

// decodeError extracts the backend's message field from an error body,
// falling back to the HTTP status text.
func decodeError(statusCode int, raw []byte) *Error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := http.StatusText(statusCode)
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}
	return &Error{StatusCode: statusCode, Message: msg}
}
