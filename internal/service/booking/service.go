// Package booking backs the booking modal and the cancel action.
package booking

import (
	"context"
	"fmt"

	"github.com/kirinyoku/tix-web/internal/api"
	"github.com/kirinyoku/tix-web/internal/domain"
)

// BookingAPI is the slice of the API client this service needs.
type BookingAPI interface {
	Create(ctx context.Context, in api.BookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	bookings BookingAPI
}

func New(bookings BookingAPI) *Service {
	return &Service{bookings: bookings}
}

// Book reserves one seat of eventID for the named requester. Seat accounting
// happens server-side; the caller re-fetches instead of decrementing
// anything locally. API errors are returned unwrapped of their *api.Error
// identity so the caller can surface the server's message.
func (s *Service) Book(ctx context.Context, eventID int64, userName, email string) (*domain.Booking, error) {
	const op = "service.booking.Book"

	b, err := s.bookings.Create(ctx, api.BookingInput{
		EventID:  eventID,
		UserName: userName,
		Email:    email,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// Cancel deletes one booking, releasing its seat on the server.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	const op = "service.booking.Cancel"

	if err := s.bookings.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
