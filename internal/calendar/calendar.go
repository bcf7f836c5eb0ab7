package calendar

import (
	"fmt"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
)

// Day truncates an instant to its calendar-date identity (midnight in
// the instant's own location). Two instants fall on the same day iff
// their Day values are equal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddDays returns t shifted by n calendar days, handling month and
// year rollover.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// FormatDay renders an instant as its YYYY-MM-DD day string.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a stored date value into a calendar day. Accepts
// both plain YYYY-MM-DD strings and RFC3339 date-times, taking the
// date part of the latter.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(constants.DateFormat, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Day(t), nil
}

// FormatHuman renders a stored date value for display: "-" for an
// absent value, a "Jan 2, 2006" string for a parseable one. Malformed
// input is echoed back unchanged rather than treated as an error, so
// a corrupt record still renders something.
func FormatHuman(raw string) string {
	if raw == "" {
		return "-"
	}
	t, err := ParseDay(raw)
	if err != nil {
		return raw
	}
	return t.Format("Jan 2, 2006")
}

// LoadLocation loads a timezone location from an IANA timezone name.
// "Local" and the empty string map to the system timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}
