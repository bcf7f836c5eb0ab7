package models

import (
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
)

// Habit represents a recurring activity tracked for completion.
// The JSON field names double as the persisted schema, so renames are
// breaking.
type Habit struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`

	// StartDate is advisory only (YYYY-MM-DD); scheduling does not
	// enforce it.
	StartDate string `json:"startDate"`

	Frequency constants.Frequency `json:"frequency"`

	// ScheduledDays is consulted only when Frequency is weekly.
	ScheduledDays []time.Weekday `json:"scheduledDays"`

	// CustomDates is consulted only when Frequency is custom
	// (YYYY-MM-DD entries).
	CustomDates []string `json:"customDates"`

	AllowSkip bool `json:"allowSkip"`

	// StreakCount is the number of consecutive completed days ending
	// at LastCompletedDate. Zero iff LastCompletedDate is nil.
	StreakCount       int        `json:"streakCount"`
	LastCompletedDate *time.Time `json:"lastCompletedDate"`

	// SkippedDates holds the YYYY-MM-DD days explicitly skipped.
	SkippedDates []string `json:"skippedDates"`
}

// Normalize fills in defaults for optional fields on records that
// predate them. It runs once when a record leaves the store, so
// downstream code never needs nil checks or zero-coalescing.
func Normalize(h Habit) Habit {
	if h.Frequency == "" {
		h.Frequency = constants.FrequencyDaily
	}
	if h.Category == "" {
		h.Category = constants.CategoryGeneral
	}
	if h.ScheduledDays == nil {
		if h.Frequency == constants.FrequencyDaily {
			h.ScheduledDays = AllWeekdays()
		} else {
			h.ScheduledDays = []time.Weekday{}
		}
	}
	if h.CustomDates == nil {
		h.CustomDates = []string{}
	}
	if h.SkippedDates == nil {
		h.SkippedDates = []string{}
	}
	if h.StreakCount < 0 || h.LastCompletedDate == nil {
		h.StreakCount = 0
	}
	return h
}

// AllWeekdays returns a fresh Sunday-through-Saturday slice, the
// default schedule for daily habits.
func AllWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}
