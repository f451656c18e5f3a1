// Package ical reads the minimal line-oriented calendar subset charter
// booking feeds expose: DTSTART/DTEND date stamps closed by END:VEVENT
// markers. It is deliberately not an RFC 5545 parser; recurrence rules,
// value-type parameters and line folding are ignored.
package ical

import (
	"strings"
	"time"

	"nautiq-backend/internal/domain"
)

var stampCleaner = strings.NewReplacer("T", "", "Z", "")

// ParseEvents extracts busy intervals from raw feed text. Events missing
// either date are silently discarded; malformed input yields no intervals.
func ParseEvents(data string) []domain.BusyInterval {
	var (
		events           []domain.BusyInterval
		start, end       time.Time
		hasStart, hasEnd bool
	)
	for _, line := range strings.Split(data, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "DTSTART"):
			if d, ok := parseStampDate(trimmed); ok {
				start, hasStart = d, true
			}
		case strings.HasPrefix(trimmed, "DTEND"):
			if d, ok := parseStampDate(trimmed); ok {
				end, hasEnd = d, true
			}
		case trimmed == "END:VEVENT":
			if hasStart && hasEnd {
				events = append(events, domain.BusyInterval{Start: start, End: end})
			}
			hasStart, hasEnd = false, false
		}
	}
	return events
}

// parseStampDate reads the date out of a property line such as
// "DTSTART;VALUE=DATE:20250710" or "DTSTART:20250710T140000Z". Only the
// YYYYMMDD prefix of the value is kept; times and zone markers are dropped
// without conversion, so feed dates are treated as naive calendar dates.
func parseStampDate(line string) (time.Time, bool) {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return time.Time{}, false
	}
	value = stampCleaner.Replace(strings.TrimSpace(value))
	if len(value) < 8 {
		return time.Time{}, false
	}
	d, err := time.Parse("20060102", value[:8])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// MonthAvailability expands busy intervals into one entry per day of the
// given month, day 1 through the last day inclusive. A day is unavailable
// when any interval contains it.
func MonthAvailability(year int, month time.Month, events []domain.BusyInterval) []domain.AvailabilityDay {
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	out := make([]domain.AvailabilityDay, 0, days)
	for d := 1; d <= days; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		booked := false
		for _, ev := range events {
			if ev.Contains(day) {
				booked = true
				break
			}
		}
		out = append(out, domain.AvailabilityDay{
			Date:      day.Format("2006-01-02"),
			Available: !booked,
		})
	}
	return out
}
