package habitlist

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
)

// wednesday, 2025-03-05
var testNow = time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func pressKey(m Model, r rune) (Model, tea.Msg) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	if cmd == nil {
		return updated, nil
	}
	return updated, cmd()
}

func TestToggleKeyGating(t *testing.T) {
	t.Run("scheduled pending habit toggles", func(t *testing.T) {
		m := New([]models.Habit{
			{ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily},
		}, testNow, 80, 24)

		_, msg := pressKey(m, 'm')
		toggle, ok := msg.(ToggleHabitMsg)
		if !ok {
			t.Fatalf("msg = %T, want ToggleHabitMsg", msg)
		}
		if toggle.ID != "h1" {
			t.Errorf("toggle ID = %q, want h1", toggle.ID)
		}
	})

	t.Run("unscheduled habit does not toggle", func(t *testing.T) {
		// Monday-only habit on a Wednesday.
		m := New([]models.Habit{
			{ID: "h1", Name: "Gym", Frequency: constants.FrequencyWeekly,
				ScheduledDays: []time.Weekday{time.Monday}},
		}, testNow, 80, 24)

		_, msg := pressKey(m, 'm')
		if _, ok := msg.(ToggleHabitMsg); ok {
			t.Error("unscheduled habit emitted ToggleHabitMsg")
		}
	})

	t.Run("completed habit can un-complete even when unscheduled", func(t *testing.T) {
		m := New([]models.Habit{
			{ID: "h1", Name: "Gym", Frequency: constants.FrequencyWeekly,
				ScheduledDays:     []time.Weekday{time.Monday},
				StreakCount:       1,
				LastCompletedDate: datePtr(testNow)},
		}, testNow, 80, 24)

		_, msg := pressKey(m, 'm')
		if _, ok := msg.(ToggleHabitMsg); !ok {
			t.Error("completed habit did not emit ToggleHabitMsg for un-complete")
		}
	})

	t.Run("skipped habit does not toggle", func(t *testing.T) {
		m := New([]models.Habit{
			{ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily,
				AllowSkip:    true,
				SkippedDates: []string{calendar.FormatDay(testNow)}},
		}, testNow, 80, 24)

		_, msg := pressKey(m, 'm')
		if _, ok := msg.(ToggleHabitMsg); ok {
			t.Error("skipped habit emitted ToggleHabitMsg")
		}
	})
}

func TestSkipKeyGating(t *testing.T) {
	t.Run("allow-skip habit skips", func(t *testing.T) {
		m := New([]models.Habit{
			{ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily, AllowSkip: true},
		}, testNow, 80, 24)

		_, msg := pressKey(m, 's')
		if _, ok := msg.(SkipHabitMsg); !ok {
			t.Error("allow-skip habit did not emit SkipHabitMsg")
		}
	})

	t.Run("no-skip habit does not skip", func(t *testing.T) {
		m := New([]models.Habit{
			{ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily},
		}, testNow, 80, 24)

		_, msg := pressKey(m, 's')
		if _, ok := msg.(SkipHabitMsg); ok {
			t.Error("no-skip habit emitted SkipHabitMsg")
		}
	})

	t.Run("unskip only fires on a skipped day", func(t *testing.T) {
		m := New([]models.Habit{
			{ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily, AllowSkip: true,
				SkippedDates: []string{calendar.FormatDay(testNow)}},
		}, testNow, 80, 24)

		_, msg := pressKey(m, 'u')
		if _, ok := msg.(UnskipHabitMsg); !ok {
			t.Error("skipped habit did not emit UnskipHabitMsg")
		}

		fresh := New([]models.Habit{
			{ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily, AllowSkip: true},
		}, testNow, 80, 24)
		_, msg = pressKey(fresh, 'u')
		if _, ok := msg.(UnskipHabitMsg); ok {
			t.Error("unskipped habit emitted UnskipHabitMsg")
		}
	})
}
