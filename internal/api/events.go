package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kirinyoku/tix-web/internal/domain"
)

// EventsClient covers the /api/events resource group.
type EventsClient struct {
	c *Client
}

// EventInput is the request body for creating or updating an event.
// AvailableSeats is sent explicitly because the server does not infer it on
// creation; new events start with AvailableSeats == Seats.
type EventInput struct {
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	Seats          int       `json:"seats"`
	AvailableSeats int       `json:"availableSeats"`
}

// List fetches all events.
func (ec *EventsClient) List(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := ec.c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListUpcoming fetches events whose date is still in the future, as decided
// by the server.
func (ec *EventsClient) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := ec.c.do(ctx, http.MethodGet, "/events/upcoming", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Get fetches a single event by id.
func (ec *EventsClient) Get(ctx context.Context, id int64) (*domain.Event, error) {
	var event domain.Event
	if err := ec.c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create registers a new event and returns the server's copy of it.
func (ec *EventsClient) Create(ctx context.Context, in EventInput) (*domain.Event, error) {
	var event domain.Event
	if err := ec.c.do(ctx, http.MethodPost, "/events", in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Update replaces the event identified by id.
func (ec *EventsClient) Update(ctx context.Context, id int64, in EventInput) (*domain.Event, error) {
	var event domain.Event
	if err := ec.c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete removes the event identified by id.
func (ec *EventsClient) Delete(ctx context.Context, id int64) error {
	return ec.c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil)
}
