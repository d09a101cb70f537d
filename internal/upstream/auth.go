package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// AuthResult is the flat body the auth endpoints return on success.
type AuthResult struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token. A rejection caused by an
// unverified email is returned as ErrEmailNotVerified so the caller can
// redirect into OTP verification.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}
	raw, err := c.doRaw(ctx, http.MethodPost, "/auth/login", "", payload)
	if err != nil {
		var upErr *Error
		if errors.As(err, &upErr) && upErr.Message == EmailNotVerifiedMessage {
			return nil, ErrEmailNotVerified
		}
		return nil, err
	}

	var result AuthResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal login response: %w", err)
	}
	return &result, nil
}

// Register creates an account. The backend mails an OTP; the account stays
// unverified until VerifyEmail succeeds.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	raw, err := c.doRaw(ctx, http.MethodPost, "/auth/register", "", req)
	if err != nil {
		return nil, err
	}

	var result AuthResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal register response: %w", err)
	}
	return &result, nil
}

// VerifyEmail submits the OTP and, on success, returns a usable session token.
func (c *Client) VerifyEmail(ctx context.Context, email, otp string) (*AuthResult, error) {
	payload := map[string]string{"email": email, "otp": otp}
	raw, err := c.doRaw(ctx, http.MethodPost, "/auth/verify-email", "", payload)
	if err != nil {
		return nil, err
	}

	var result AuthResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verify-email response: %w", err)
	}
	return &result, nil
}

// ResendVerification asks the backend to mail a fresh OTP.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	_, err := c.doRaw(ctx, http.MethodPost, "/auth/resend-verification", "", payload)
	return err
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context, token string) (*User, error) {
	var user User
	if _, err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile patches profile fields and returns the updated record.
func (c *Client) UpdateProfile(ctx context.Context, token string, updates map[string]any) (*User, error) {
	var user User
	if _, err := c.do(ctx, http.MethodPatch, "/auth/profile", token, updates, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
