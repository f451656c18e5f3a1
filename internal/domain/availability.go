package domain

import "time"

// AvailabilityDay reports whether a single calendar day is free of bookings.
type AvailabilityDay struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// BusyInterval is an inclusive booked date range taken from one calendar
// event.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls inside the interval, inclusive on both
// ends.
func (b BusyInterval) Contains(day time.Time) bool {
	return !day.Before(b.Start) && !day.After(b.End)
}
