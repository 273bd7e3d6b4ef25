package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kirinyoku/tix-web/internal/domain"
)

// BookingsClient covers the /api/bookings resource group.
type BookingsClient struct {
	c *Client
}

// BookingInput is the request body for creating a booking.
type BookingInput struct {
	EventID  int64  `json:"eventId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// List fetches all bookings.
func (bc *BookingsClient) List(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := bc.c.do(ctx, http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByEvent fetches the bookings made against one event.
func (bc *BookingsClient) ListByEvent(ctx context.Context, eventID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	path := fmt.Sprintf("/bookings/event/%d", eventID)
	if err := bc.c.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByUser fetches the bookings made by one requester email.
func (bc *BookingsClient) ListByUser(ctx context.Context, email string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	path := "/bookings/user/" + url.PathEscape(email)
	if err := bc.c.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Create registers a booking, consuming one seat of the referenced event on
// the server side.
func (bc *BookingsClient) Create(ctx context.Context, in BookingInput) (*domain.Booking, error) {
	var booking domain.Booking
	if err := bc.c.do(ctx, http.MethodPost, "/bookings", in, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Delete cancels the booking identified by id, releasing its seat on the
// server side.
func (bc *BookingsClient) Delete(ctx context.Context, id int64) error {
	return bc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil)
}
