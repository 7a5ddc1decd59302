package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wardydev/bri-finder-admin/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse covers both auth endpoints: data carries the token on login
// and is unused on register.
type authResponse struct {
	Status  string `json:"status"`
	Data    string `json:"data"`
	Message string `json:"message"`
}

type profileResponse struct {
	Data models.Profile `json:"data"`
}

// Login exchanges credentials for a session token. A non-"success" status in
// the envelope surfaces as ErrValidation carrying the backend's message —
// the auth screens are the only place such messages reach the operator.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "auth/login", bytes.NewReader(body), "application/json", &out); err != nil {
		return "", err
	}
	if out.Status != "success" {
		return "", fmt.Errorf("%w: %s", ErrValidation, out.Message)
	}
	return out.Data, nil
}

// Register creates a new admin account.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	body, err := json.Marshal(registerRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "auth/register", bytes.NewReader(body), "application/json", &out); err != nil {
		return err
	}
	if out.Status != "success" {
		return fmt.Errorf("%w: %s", ErrValidation, out.Message)
	}
	return nil
}

// Profile returns the logged-in operator's account details.
func (c *HTTPClient) Profile(ctx context.Context) (models.Profile, error) {
	var out profileResponse
	if err := c.do(ctx, http.MethodGet, "auth/profile", nil, "", &out); err != nil {
		return models.Profile{}, err
	}
	return out.Data, nil
}
