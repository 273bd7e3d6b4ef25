// Package api is a thin client for the remote event booking REST API.
//
// Every operation issues exactly one HTTP round trip: no retries, no
// client-side timeout, no caching. Callers bound the call lifetime through
// the context they pass in.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client groups access to the two resource families exposed by the API.
type Client struct {
	Events   *EventsClient
	Bookings *BookingsClient

	baseURL string
	httpc   *http.Client
}

// New creates a Client rooted at baseURL (e.g. "http://localhost:8080").
// The "/api" prefix is appended here, not by callers.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		httpc:   &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Events = &EventsClient{c: c}
	c.Bookings = &BookingsClient{c: c}

	return c
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Used by tests and by
// callers that need a custom transport.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// do performs one request against path (relative to the /api base). A non-nil
// body is JSON-encoded; a non-nil out receives the decoded response body.
// Non-2xx responses are returned as *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	const op = "api.do"

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s %s: %w", op, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}

	return nil
}
