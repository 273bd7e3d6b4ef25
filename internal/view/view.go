// Package view holds the presentation models the HTML templates render.
// Handlers build these; templates contain no logic beyond iteration.
package view

import (
	"github.com/kirinyoku/tix-web/internal/domain"
)

// Status is the top-level display state of a page. Modeling it as an enum
// keeps impossible combinations (an error message on a ready page, for
// example) unrepresentable.
type Status int

const (
	StatusLoading Status = iota
	StatusFailed
	StatusReady
)

// Failed and Ready exist for templates, which cannot compare enum values
// without magic numbers.
func (s Status) Failed() bool { return s == StatusFailed }
func (s Status) Ready() bool  { return s == StatusReady }

// Fallback literals for a booking whose event is missing from the fetched
// event set. A dangling reference is rendered, not treated as an error.
const (
	UnknownEventTitle = "Unknown Event"
	UnknownEventDate  = "N/A"
)

// ConfirmedLabel is the static status shown for every booking; the API has
// no booking state machine.
const ConfirmedLabel = "Confirmed"

// EventCard is one catalog entry.
type EventCard struct {
	Event     domain.Event
	DateLabel string
	Percent   int
}

// NewEventCard derives the display fields of e.
func NewEventCard(e domain.Event) EventCard {
	return EventCard{
		Event:     e,
		DateLabel: FormatDate(e.Date),
		Percent:   AvailabilityPercent(e.AvailableSeats, e.Seats),
	}
}

// NewEventCards maps NewEventCard over events.
func NewEventCards(events []domain.Event) []EventCard {
	cards := make([]EventCard, 0, len(events))
	for _, e := range events {
		cards = append(cards, NewEventCard(e))
	}
	return cards
}

// Catalog is the event catalog page.
type Catalog struct {
	Status       Status
	Message      string
	Flash        string
	Admin        bool
	UpcomingOnly bool
	Booked       bool
	Cards        []EventCard
	Modal        *BookingForm
}

// BookingForm is the booking modal rendered over the catalog. UserName,
// Email and Error survive a failed submit so the form stays open for retry.
type BookingForm struct {
	Card     EventCard
	UserName string
	Email    string
	Error    string
}

// Ledger is the bookings page.
type Ledger struct {
	Status      Status
	Message     string
	Flash       string
	FilterEmail string
	Rows        []LedgerRow
}

// LedgerRow is one booking joined with its event.
type LedgerRow struct {
	Booking       domain.Booking
	EventTitle    string
	EventDate     string
	BookedAt      string
	StatusLabel   string
	EventResolved bool
}

// NewLedgerRows joins bookings against the event lookup table. Rows whose
// event is absent get the fallback literals.
func NewLedgerRows(bookings []domain.Booking, events map[int64]domain.Event) []LedgerRow {
	rows := make([]LedgerRow, 0, len(bookings))
	for _, b := range bookings {
		row := LedgerRow{
			Booking:     b,
			EventTitle:  UnknownEventTitle,
			EventDate:   UnknownEventDate,
			BookedAt:    FormatDate(b.CreatedAt),
			StatusLabel: ConfirmedLabel,
		}
		if e, ok := events[b.EventID]; ok {
			row.EventTitle = e.Title
			row.EventDate = FormatDate(e.Date)
			row.EventResolved = true
		}
		rows = append(rows, row)
	}
	return rows
}

// EventEditor is the admin create/edit form page.
type EventEditor struct {
	Editing  bool
	EventID  int64
	Title    string
	DateTime string // datetime-local value, yyyy-MM-ddTHH:mm
	Location string
	Seats    int
	Error    string
	Created  bool
}
