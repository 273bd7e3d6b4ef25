package view

import (
	"fmt"
	"math"
	"time"
)

// Timestamps always render the same way everywhere in the UI: it-IT,
// 2-digit day, full month name, year, 24-hour clock. A fixed presentation
// contract, not a localization feature.
var months = [...]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// FormatDate renders t as e.g. "01 giugno 2025, 10:00".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d, %02d:%02d",
		t.Day(), months[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// AvailabilityPercent is the width of the seat availability bar:
// round(available/total*100), clamped to [0,100]. A zero total renders as
// empty rather than dividing by zero.
func AvailabilityPercent(available, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(available) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
