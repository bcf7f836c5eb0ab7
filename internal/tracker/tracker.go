package tracker

import (
	"fmt"
	"slices"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/logger"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
)

// Store is the slice of the habit store the tracker writes through.
// storage.Provider satisfies it.
type Store interface {
	UpdateHabit(models.Habit) error
}

// Clock supplies "now" so completion decisions are testable and honor
// the configured timezone.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a configured IANA timezone.
type SystemClock struct {
	Timezone string
}

func (c SystemClock) Now() time.Time {
	now, err := calendar.NowInTimezone(c.Timezone)
	if err != nil {
		// Misconfigured timezone falls back to the system clock.
		logger.Warn("Invalid timezone, falling back to system local time", "timezone", c.Timezone)
		return time.Now()
	}
	return now
}

// Tracker applies completion and skip actions to habit records and
// persists the result. Every action is a pure transformation over the
// input record followed by a single store write; on write failure the
// input record is returned untouched and the error propagates.
//
// Streak continuation is defined purely by completion adjacency:
// completing on two adjacent calendar days extends the streak by one,
// even across unscheduled days. Skipping never touches the streak or
// the last-completion date, so a skipped day does not preserve the
// chain for the next real completion.
type Tracker struct {
	store Store
	clock Clock
}

func New(store Store, clock Clock) *Tracker {
	return &Tracker{store: store, clock: clock}
}

// ToggleCompletion is the sole completion action: it completes the
// habit for today, or un-completes it when today is already marked.
// Un-completing resets the streak to zero rather than restoring the
// pre-completion value. The schedule is not consulted here; callers
// gate the action on unscheduled or skipped days.
func (t *Tracker) ToggleCompletion(habit models.Habit) (models.Habit, error) {
	now := t.clock.Now()
	updated := habit

	if habit.LastCompletedDate != nil && calendar.SameDay(*habit.LastCompletedDate, now) {
		updated.LastCompletedDate = nil
		updated.StreakCount = 0
	} else {
		yesterday := calendar.AddDays(now, -1)
		if habit.LastCompletedDate != nil && calendar.SameDay(*habit.LastCompletedDate, yesterday) {
			updated.StreakCount = habit.StreakCount + 1
		} else {
			updated.StreakCount = 1
		}
		ts := now
		updated.LastCompletedDate = &ts
	}

	if err := t.store.UpdateHabit(updated); err != nil {
		return habit, fmt.Errorf("failed to persist completion for habit %s: %w", habit.ID, err)
	}

	logger.Debug("Toggled completion", "habit", habit.Name, "streak", updated.StreakCount)
	return updated, nil
}

// SkipToday records today as explicitly skipped. The insertion is
// idempotent and never touches StreakCount or LastCompletedDate. A
// day already marked complete cannot also be skipped; un-complete it
// first.
func (t *Tracker) SkipToday(habit models.Habit) (models.Habit, error) {
	now := t.clock.Now()
	if habit.LastCompletedDate != nil && calendar.SameDay(*habit.LastCompletedDate, now) {
		return habit, fmt.Errorf("habit %q is already completed today", habit.Name)
	}

	day := calendar.FormatDay(now)
	updated := habit
	if !slices.Contains(habit.SkippedDates, day) {
		updated.SkippedDates = append(slices.Clone(habit.SkippedDates), day)
	}

	if err := t.store.UpdateHabit(updated); err != nil {
		return habit, fmt.Errorf("failed to persist skip for habit %s: %w", habit.ID, err)
	}

	logger.Debug("Skipped habit for today", "habit", habit.Name, "day", day)
	return updated, nil
}

// UnskipToday removes today from the skipped set. Removing an absent
// day is not an error.
func (t *Tracker) UnskipToday(habit models.Habit) (models.Habit, error) {
	day := calendar.FormatDay(t.clock.Now())
	updated := habit
	if idx := slices.Index(habit.SkippedDates, day); idx >= 0 {
		updated.SkippedDates = slices.Delete(slices.Clone(habit.SkippedDates), idx, idx+1)
	}

	if err := t.store.UpdateHabit(updated); err != nil {
		return habit, fmt.Errorf("failed to persist unskip for habit %s: %w", habit.ID, err)
	}

	logger.Debug("Unskipped habit for today", "habit", habit.Name, "day", day)
	return updated, nil
}
