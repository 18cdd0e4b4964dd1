// internal/upstream/auth.go
package upstream

import (
	"context"
	"net/http"
)

// Login authenticates with email and password and returns the token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var tokens TokenPair
	err := c.do(ctx, http.MethodPost, "/login/", nil, LoginRequest{Email: email, Password: password}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates an account. The server sends an OTP email; the account
// becomes usable after VerifyOTP.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/register/", nil, req, nil)
}

// VerifyOTP confirms the emailed one-time code and returns the token pair.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*TokenPair, error) {
	var tokens TokenPair
	payload := map[string]string{"email": email, "otp": otp}
	if err := c.do(ctx, http.MethodPost, "/verify-otp/", nil, payload, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *Client) ResendOTP(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/resend-otp/", nil, map[string]string{"email": email}, nil)
}

// ForgotPassword requests a password-reset OTP for the given email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/forgot-password/", nil, map[string]string{"email": email}, nil)
}

// ResetPassword completes a reset using the emailed OTP.
func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	payload := map[string]string{
		"email":        email,
		"otp":          otp,
		"new_password": newPassword,
	}
	return c.do(ctx, http.MethodPost, "/reset-password/", nil, payload, nil)
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/profile/", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, profile Profile) (*Profile, error) {
	var updated Profile
	if err := c.do(ctx, http.MethodPut, "/profile/", nil, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
