// Package rest implements the auth gateway against the admin account
// endpoints of the job-board API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

const (
	loginPath          = "/api/accounts/admin/login/"
	changePasswordPath = "/api/accounts/admin/change-password/"

	// DefaultTimeout bounds auth calls when no client is injected.
	DefaultTimeout = 30 * time.Second
)

// Gateway performs the login and change-password calls. Login is the one
// endpoint that runs without a token.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = client
	}
}

// NewGateway creates an auth gateway for the given API base URL.
func NewGateway(baseURL string, log *slog.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Login exchanges credentials for a token. A non-2xx response becomes an
// AuthError carrying the server's message; a transport failure becomes a
// NetworkError.
func (g *Gateway) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", &apierr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := apierr.ExtractMessage(respBody)
		if message == "" {
			message = "Invalid credentials"
		}
		g.log.Warn("login rejected", "status", resp.StatusCode)
		return "", &apierr.AuthError{Message: message}
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}

	return payload.Token, nil
}

// ChangePassword submits the password-change form on behalf of the
// signed-in admin.
func (g *Gateway) ChangePassword(ctx context.Context, token, oldPassword, newPassword, confirmPassword string) error {
	body, err := json.Marshal(map[string]string{
		"old_password":         oldPassword,
		"new_password":         newPassword,
		"confirm_new_password": confirmPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to encode change-password payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+changePasswordPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create change-password request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return &apierr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		message := apierr.ExtractMessage(respBody)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			if message == "" {
				message = "Unauthorized: Please log in again."
			}
			return &apierr.AuthError{Message: message}
		}
		if message == "" {
			message = "Failed to change password"
		}
		return &apierr.FetchError{Status: resp.StatusCode, Body: string(respBody), Message: message}
	}

	return nil
}
