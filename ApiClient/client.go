package ApiClient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrAuthExpired is returned for any 401 response. The client never reacts to
// it beyond reporting it; the shell owns session teardown and navigation.
var ErrAuthExpired = errors.New("session expired")

// APIError carries a non-2xx response. Message holds the server's own wording
// when the body provided one, so callers can surface it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// TokenSource yields the bearer token to attach to outgoing requests. An
// empty string means no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// Client wraps the remote sales API.
type Client struct {
	BaseURL string
	Tokens  TokenSource
	Http    *http.Client
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL: baseURL,
		Tokens:  tokens,
		Http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). body is marshalled as the JSON request body when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.Http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuthExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// serverMessage pulls the human-readable message out of an error body. The
// API answers with {"message": ...}; "error" is accepted too.
func serverMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Err
}
