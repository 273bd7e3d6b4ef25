// Package ledger backs the bookings page: the dual fetch and the
// booking/event join.
package ledger

import (
	"context"
	"fmt"

	"github.com/kirinyoku/tix-web/internal/domain"
	"golang.org/x/sync/errgroup"
)

// BookingAPI is the slice of the API client the ledger needs.
type BookingAPI interface {
	List(ctx context.Context) ([]domain.Booking, error)
	ListByEvent(ctx context.Context, eventID int64) ([]domain.Booking, error)
	ListByUser(ctx context.Context, email string) ([]domain.Booking, error)
}

// EventAPI is the slice of the API client the ledger needs for the join.
type EventAPI interface {
	List(ctx context.Context) ([]domain.Event, error)
}

type Service struct {
	bookings BookingAPI
	events   EventAPI
}

func New(bookings BookingAPI, events EventAPI) *Service {
	return &Service{bookings: bookings, events: events}
}

// Filter restricts the bookings half of the fetch. Zero value means all
// bookings. Email wins when both are set.
type Filter struct {
	EventID int64
	Email   string
}

// Snapshot is one fetch cycle's worth of data: the bookings plus the event
// lookup table they join against.
type Snapshot struct {
	Bookings []domain.Booking
	Events   map[int64]domain.Event
}

// Fetch issues the bookings and events fetches concurrently and fails as a
// whole if either fails; the page never shows partial data. The lookup
// table is built once per call.
func (s *Service) Fetch(ctx context.Context, f Filter) (*Snapshot, error) {
	const op = "service.ledger.Fetch"

	var (
		bookings []domain.Booking
		events   []domain.Event
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		switch {
		case f.Email != "":
			bookings, err = s.bookings.ListByUser(gCtx, f.Email)
		case f.EventID != 0:
			bookings, err = s.bookings.ListByEvent(gCtx, f.EventID)
		default:
			bookings, err = s.bookings.List(gCtx)
		}
		return err
	})

	g.Go(func() error {
		var err error
		events, err = s.events.List(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lookup := make(map[int64]domain.Event, len(events))
	for _, e := range events {
		lookup[e.ID] = e
	}

	return &Snapshot{Bookings: bookings, Events: lookup}, nil
}
