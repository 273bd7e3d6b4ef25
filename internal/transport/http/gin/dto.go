package httpgin

import "time"

// datetimeLocal is the layout of an HTML datetime-local input value.
const datetimeLocal = "2006-01-02T15:04"

// BookingFormRequest is the booking modal submit. The inputs themselves
// enforce required/email; binding re-checks the same rules and nothing more.
type BookingFormRequest struct {
	EventID  int64  `form:"eventId" binding:"required"`
	UserName string `form:"userName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
}

// EventFormRequest is the admin create/edit event submit.
type EventFormRequest struct {
	Title    string `form:"title" binding:"required"`
	Date     string `form:"date" binding:"required"`
	Location string `form:"location" binding:"required"`
	Seats    int    `form:"seats" binding:"required,min=1"`
}

// ParseDate converts the datetime-local value into a timestamp.
func (r EventFormRequest) ParseDate() (time.Time, error) {
	return time.Parse(datetimeLocal, r.Date)
}
