package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is a non-2xx response from the booking API. Message carries the
// server's optional human-readable "message" field and may be empty.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: server returned %d", e.Status)
	}
	return fmt.Sprintf("api: server returned %d: %s", e.Status, e.Message)
}

// ServerMessage returns err's server-provided message when err is an *Error
// carrying one, otherwise fallback. This is the single place the "show the
// server's message if present, else a generic one" rule lives.
func ServerMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// newError decodes the error body of resp. A missing or malformed body is
// not itself an error; it just leaves Message empty.
func newError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return e
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Message = payload.Message
	}

	return e
}
