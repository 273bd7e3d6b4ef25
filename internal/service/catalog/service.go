// Package catalog backs the event catalog page.
package catalog

import (
	"context"
	"fmt"

	"github.com/kirinyoku/tix-web/internal/domain"
)

// EventAPI is the slice of the API client the catalog needs.
type EventAPI interface {
	List(ctx context.Context) ([]domain.Event, error)
	ListUpcoming(ctx context.Context) ([]domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	events EventAPI
}

func New(events EventAPI) *Service {
	return &Service{events: events}
}

// Events fetches the event list, optionally restricted to upcoming events.
// Every call is a fresh round trip; nothing is cached between renders.
func (s *Service) Events(ctx context.Context, upcomingOnly bool) ([]domain.Event, error) {
	const op = "service.catalog.Events"

	var (
		events []domain.Event
		err    error
	)
	if upcomingOnly {
		events, err = s.events.ListUpcoming(ctx)
	} else {
		events, err = s.events.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// DeleteEvent removes one event. The caller re-fetches the list afterwards
// rather than patching it locally; the server's copy is the only truth.
func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteEvent"

	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
