// Package admin backs the event create/edit forms.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/kirinyoku/tix-web/internal/api"
	"github.com/kirinyoku/tix-web/internal/domain"
)

// EventAPI is the slice of the API client the admin forms need.
type EventAPI interface {
	Get(ctx context.Context, id int64) (*domain.Event, error)
	Create(ctx context.Context, in api.EventInput) (*domain.Event, error)
	Update(ctx context.Context, id int64, in api.EventInput) (*domain.Event, error)
}

type Service struct {
	events EventAPI
}

func New(events EventAPI) *Service {
	return &Service{events: events}
}

// EventDraft is the admin form's idea of an event.
type EventDraft struct {
	Title    string
	Date     time.Time
	Location string
	Seats    int
}

// Event fetches one event for the edit form.
func (s *Service) Event(ctx context.Context, id int64) (*domain.Event, error) {
	const op = "service.admin.Event"

	e, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

// CreateEvent registers a new event. A fresh event has every seat available,
// so AvailableSeats is sent equal to Seats.
func (s *Service) CreateEvent(ctx context.Context, d EventDraft) (*domain.Event, error) {
	const op = "service.admin.CreateEvent"

	e, err := s.events.Create(ctx, api.EventInput{
		Title:          d.Title,
		Date:           d.Date,
		Location:       d.Location,
		Seats:          d.Seats,
		AvailableSeats: d.Seats,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

// UpdateEvent replaces event id with the draft. The current availableSeats
// is carried forward from the server's copy, capped at the new capacity,
// since the form edits capacity but never seat accounting.
func (s *Service) UpdateEvent(ctx context.Context, id int64, d EventDraft) (*domain.Event, error) {
	const op = "service.admin.UpdateEvent"

	current, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	available := current.AvailableSeats
	if available > d.Seats {
		available = d.Seats
	}

	e, err := s.events.Update(ctx, id, api.EventInput{
		Title:          d.Title,
		Date:           d.Date,
		Location:       d.Location,
		Seats:          d.Seats,
		AvailableSeats: available,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}
