package domain

import "time"

// Event is a bookable occasion as the booking API represents it on the wire.
// Field names are fixed by the remote service and must not change.
type Event struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	Seats          int       `json:"seats"`
	AvailableSeats int       `json:"availableSeats"`
}

// SoldOut reports whether no seats remain.
func (e Event) SoldOut() bool {
	return e.AvailableSeats == 0
}

// Booking is a reservation made by a named requester against one event.
type Booking struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
