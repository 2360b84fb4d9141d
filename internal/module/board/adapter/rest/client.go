// Package rest implements the resource gateways against the job-board
// API. A shared client owns encoding, token attachment, and the mapping
// from HTTP failures into the apierr taxonomy; the per-resource files
// only bind paths and payload shapes.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// DefaultTimeout bounds resource calls when no client is injected.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token for authenticated requests. An
// empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the shared HTTP layer under every resource gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates the shared client for the given API base URL.
func NewClient(baseURL string, tokens TokenSource, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     tokens,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, nil)
}

// sendMultipart encodes fields and an optional file the way the company
// form uploads its logo.
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, filename string, content []byte, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to encode form field %s: %w", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(content); err != nil {
			return fmt.Errorf("failed to write form file: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apierr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apierr.NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapFailure(req, resp.StatusCode, body)
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// mapFailure turns a non-2xx response into the matching taxonomy error.
// The API reports referential-constraint rejections with a 400 and a
// recognizable phrase rather than a 409, so both are checked.
func (c *Client) mapFailure(req *http.Request, status int, body []byte) error {
	message := apierr.ExtractMessage(body)
	lower := strings.ToLower(message)

	c.log.Warn("request failed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", status,
	)

	switch {
	case status == http.StatusConflict,
		strings.Contains(lower, "associated with existing"),
		strings.Contains(lower, "is referenced by"):
		if message == "" {
			message = "This record is still referenced by other records and cannot be deleted."
		}
		return &apierr.ConflictError{Message: message}
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		if message == "" {
			message = "Unauthorized: Please log in again."
		}
		return &apierr.AuthError{Message: message}
	default:
		return &apierr.FetchError{Status: status, Body: string(body), Message: message}
	}
}
