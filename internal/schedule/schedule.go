package schedule

import (
	"strings"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
)

// IsScheduled reports whether the habit is due on the given reference
// date according to its recurrence configuration.
func IsScheduled(habit models.Habit, ref time.Time) bool {
	switch habit.Frequency {
	case constants.FrequencyDaily:
		return true
	case constants.FrequencyWeekly:
		if len(habit.ScheduledDays) == 0 {
			return false
		}
		for _, wd := range habit.ScheduledDays {
			if ref.Weekday() == wd {
				return true
			}
		}
		return false
	case constants.FrequencyCustom:
		day := calendar.FormatDay(ref)
		for _, d := range habit.CustomDates {
			if d == day {
				return true
			}
		}
		return false
	default:
		// Unrecognized frequencies behave like daily so that legacy
		// or malformed records stay usable.
		return true
	}
}

// NextScheduledDate returns the first scheduled occurrence strictly
// after the reference date. ok is false when the habit has no
// upcoming occurrence: a weekly habit with an empty day set, or a
// frequency for which a next occurrence is not computed.
func NextScheduledDate(habit models.Habit, ref time.Time) (next time.Time, ok bool) {
	switch habit.Frequency {
	case constants.FrequencyDaily:
		return calendar.AddDays(ref, 1), true
	case constants.FrequencyWeekly:
		for offset := 1; offset <= 7; offset++ {
			candidate := calendar.AddDays(ref, offset)
			for _, wd := range habit.ScheduledDays {
				if candidate.Weekday() == wd {
					return candidate, true
				}
			}
		}
		return time.Time{}, false
	default:
		// Custom schedules answer direct membership only; scanning
		// forward through CustomDates is not in scope.
		return time.Time{}, false
	}
}

// IsSkipped reports whether the habit was explicitly skipped on the
// reference date.
func IsSkipped(habit models.Habit, ref time.Time) bool {
	day := calendar.FormatDay(ref)
	for _, d := range habit.SkippedDates {
		if d == day {
			return true
		}
	}
	return false
}

// FormatFrequency renders a habit's recurrence as a human label.
func FormatFrequency(habit models.Habit) string {
	switch habit.Frequency {
	case constants.FrequencyWeekly:
		if len(habit.ScheduledDays) == 0 {
			return "Never"
		}
		var days []string
		for _, wd := range habit.ScheduledDays {
			days = append(days, wd.String()[:3])
		}
		return strings.Join(days, ", ")
	case constants.FrequencyCustom:
		return "Custom schedule"
	default:
		return "Every day"
	}
}
