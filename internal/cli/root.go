package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
	"github.com/AkshayPatel20/Beunstoppable/internal/storage"
	"github.com/AkshayPatel20/Beunstoppable/internal/tracker"
)

// Context carries the shared collaborators into every command. Clock
// and Tracker are built from the loaded settings, so they are nil for
// commands that run before the store exists (init).
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Clock   tracker.Clock
	OwnerID string
	Debug   bool
}

// RequireHabit resolves a habit by name for the configured owner.
func (c *Context) RequireHabit(name string) (models.Habit, error) {
	habit, err := c.Store.GetHabitByName(c.OwnerID, name)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %q not found", name)
	}
	return habit, nil
}

// ParseWeekdays parses a comma-separated list of weekdays, accepting
// names, three-letter abbreviations, and 0-6 indices (0 = Sunday).
func ParseWeekdays(s string) ([]time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, time.Weekday(num))
	}
	return weekdays, nil
}

// ParseDates parses a comma-separated list of YYYY-MM-DD dates,
// returning them normalized.
func ParseDates(s string) ([]string, error) {
	var dates []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		day, err := calendar.ParseDay(part)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q (expected %s)", part, constants.DateFormat)
		}
		dates = append(dates, calendar.FormatDay(day))
	}
	return dates, nil
}
