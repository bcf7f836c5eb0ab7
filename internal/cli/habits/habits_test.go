package habits

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/cli"
	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
	"github.com/AkshayPatel20/Beunstoppable/internal/storage"
	"github.com/AkshayPatel20/Beunstoppable/internal/tracker"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// wednesday, 2025-03-05
var testNow = time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

func setupContext(t *testing.T) *cli.Context {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	clock := fixedClock{now: testNow}
	return &cli.Context{
		Store:   store,
		Tracker: tracker.New(store, clock),
		Clock:   clock,
		OwnerID: constants.DefaultOwnerID,
	}
}

func addTestHabit(t *testing.T, ctx *cli.Context, h models.Habit) models.Habit {
	t.Helper()
	if h.OwnerID == "" {
		h.OwnerID = ctx.OwnerID
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = testNow
	}
	if err := ctx.Store.AddHabit(h); err != nil {
		t.Fatalf("failed to add habit %q: %v", h.Name, err)
	}
	return h
}

func TestAddCmd(t *testing.T) {
	t.Run("daily habit", func(t *testing.T) {
		ctx := setupContext(t)
		cmd := &AddCmd{Name: "Read", Frequency: "daily", Category: "Learning"}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		habit, err := ctx.Store.GetHabitByName(ctx.OwnerID, "Read")
		if err != nil {
			t.Fatalf("habit not stored: %v", err)
		}
		if habit.Frequency != constants.FrequencyDaily {
			t.Errorf("frequency = %q, want daily", habit.Frequency)
		}
		if len(habit.ScheduledDays) != 7 {
			t.Errorf("daily habit has %d scheduled days, want 7", len(habit.ScheduledDays))
		}
	})

	t.Run("weekly habit requires days", func(t *testing.T) {
		ctx := setupContext(t)
		cmd := &AddCmd{Name: "Gym", Frequency: "weekly"}
		if err := cmd.Run(ctx); err == nil {
			t.Error("expected error for weekly habit without --days")
		}
	})

	t.Run("weekly habit with days", func(t *testing.T) {
		ctx := setupContext(t)
		cmd := &AddCmd{Name: "Gym", Frequency: "weekly", Days: "mon,wed,fri"}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		habit, err := ctx.Store.GetHabitByName(ctx.OwnerID, "Gym")
		if err != nil {
			t.Fatalf("habit not stored: %v", err)
		}
		want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
		if len(habit.ScheduledDays) != len(want) {
			t.Fatalf("scheduled days = %v, want %v", habit.ScheduledDays, want)
		}
		for i, d := range want {
			if habit.ScheduledDays[i] != d {
				t.Errorf("scheduled day %d = %v, want %v", i, habit.ScheduledDays[i], d)
			}
		}
	})

	t.Run("custom habit with dates", func(t *testing.T) {
		ctx := setupContext(t)
		cmd := &AddCmd{Name: "Dentist", Frequency: "custom", Dates: "2025-03-10,2025-04-10"}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		habit, err := ctx.Store.GetHabitByName(ctx.OwnerID, "Dentist")
		if err != nil {
			t.Fatalf("habit not stored: %v", err)
		}
		if len(habit.CustomDates) != 2 {
			t.Errorf("custom dates = %v, want 2 entries", habit.CustomDates)
		}
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		ctx := setupContext(t)
		if err := (&AddCmd{Name: "Read", Frequency: "daily"}).Run(ctx); err != nil {
			t.Fatalf("first add failed: %v", err)
		}
		if err := (&AddCmd{Name: "Read", Frequency: "daily"}).Run(ctx); err == nil {
			t.Error("expected error adding duplicate name")
		}
	})

	t.Run("unknown frequency rejected", func(t *testing.T) {
		ctx := setupContext(t)
		if err := (&AddCmd{Name: "Odd", Frequency: "fortnightly"}).Run(ctx); err == nil {
			t.Error("expected error for unknown frequency")
		}
	})
}

func TestDoneCmd(t *testing.T) {
	t.Run("completes scheduled habit", func(t *testing.T) {
		ctx := setupContext(t)
		addTestHabit(t, ctx, models.Habit{
			ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily,
		})

		if err := (&DoneCmd{Name: "Read"}).Run(ctx); err != nil {
			t.Fatalf("done failed: %v", err)
		}

		habit, _ := ctx.Store.GetHabitByName(ctx.OwnerID, "Read")
		if habit.StreakCount != 1 {
			t.Errorf("streak = %d, want 1", habit.StreakCount)
		}
		if habit.LastCompletedDate == nil || !calendar.SameDay(*habit.LastCompletedDate, testNow) {
			t.Errorf("last completed = %v, want today", habit.LastCompletedDate)
		}
	})

	t.Run("refuses unscheduled day without force", func(t *testing.T) {
		ctx := setupContext(t)
		// Monday-only habit; the fixed clock is a Wednesday.
		addTestHabit(t, ctx, models.Habit{
			ID: "h1", Name: "Gym", Frequency: constants.FrequencyWeekly,
			ScheduledDays: []time.Weekday{time.Monday},
		})

		if err := (&DoneCmd{Name: "Gym"}).Run(ctx); err == nil {
			t.Error("expected error completing unscheduled habit")
		}
		if err := (&DoneCmd{Name: "Gym", Force: true}).Run(ctx); err != nil {
			t.Errorf("forced completion failed: %v", err)
		}
	})

	t.Run("refuses skipped day", func(t *testing.T) {
		ctx := setupContext(t)
		addTestHabit(t, ctx, models.Habit{
			ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily,
			AllowSkip:    true,
			SkippedDates: []string{calendar.FormatDay(testNow)},
		})

		if err := (&DoneCmd{Name: "Read"}).Run(ctx); err == nil {
			t.Error("expected error completing skipped habit")
		}
	})

	t.Run("second run un-completes", func(t *testing.T) {
		ctx := setupContext(t)
		addTestHabit(t, ctx, models.Habit{
			ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily,
		})

		if err := (&DoneCmd{Name: "Read"}).Run(ctx); err != nil {
			t.Fatalf("first done failed: %v", err)
		}
		if err := (&DoneCmd{Name: "Read"}).Run(ctx); err != nil {
			t.Fatalf("second done failed: %v", err)
		}

		habit, _ := ctx.Store.GetHabitByName(ctx.OwnerID, "Read")
		if habit.StreakCount != 0 {
			t.Errorf("streak = %d, want 0 after un-complete", habit.StreakCount)
		}
		if habit.LastCompletedDate != nil {
			t.Errorf("last completed = %v, want nil", habit.LastCompletedDate)
		}
	})

	t.Run("unknown habit", func(t *testing.T) {
		ctx := setupContext(t)
		if err := (&DoneCmd{Name: "Nope"}).Run(ctx); err == nil {
			t.Error("expected error for unknown habit")
		}
	})
}

func TestSkipCmd(t *testing.T) {
	t.Run("skip requires allow-skip", func(t *testing.T) {
		ctx := setupContext(t)
		addTestHabit(t, ctx, models.Habit{
			ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily,
		})

		if err := (&SkipCmd{Name: "Read"}).Run(ctx); err == nil {
			t.Error("expected error skipping habit without allow-skip")
		}
	})

	t.Run("skip and unskip round trip", func(t *testing.T) {
		ctx := setupContext(t)
		addTestHabit(t, ctx, models.Habit{
			ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily, AllowSkip: true,
		})

		if err := (&SkipCmd{Name: "Read"}).Run(ctx); err != nil {
			t.Fatalf("skip failed: %v", err)
		}
		habit, _ := ctx.Store.GetHabitByName(ctx.OwnerID, "Read")
		if len(habit.SkippedDates) != 1 || habit.SkippedDates[0] != calendar.FormatDay(testNow) {
			t.Errorf("skipped dates = %v, want today only", habit.SkippedDates)
		}

		if err := (&UnskipCmd{Name: "Read"}).Run(ctx); err != nil {
			t.Fatalf("unskip failed: %v", err)
		}
		habit, _ = ctx.Store.GetHabitByName(ctx.OwnerID, "Read")
		if len(habit.SkippedDates) != 0 {
			t.Errorf("skipped dates = %v, want empty", habit.SkippedDates)
		}
	})
}

func TestDeleteCmd(t *testing.T) {
	ctx := setupContext(t)
	addTestHabit(t, ctx, models.Habit{
		ID: "h1", Name: "Read", Frequency: constants.FrequencyDaily,
	})

	if err := (&DeleteCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := ctx.Store.GetHabitByName(ctx.OwnerID, "Read"); err == nil {
		t.Error("habit still present after delete")
	}

	if err := (&DeleteCmd{Name: "Read"}).Run(ctx); err == nil {
		t.Error("expected error deleting unknown habit")
	}
}

func TestFormatNext(t *testing.T) {
	daily := models.Habit{Frequency: constants.FrequencyDaily, ScheduledDays: models.AllWeekdays()}
	if got := formatNext(daily, testNow); got != "Mar 6, 2025" {
		t.Errorf("formatNext(daily) = %q, want %q", got, "Mar 6, 2025")
	}

	never := models.Habit{Frequency: constants.FrequencyWeekly, ScheduledDays: []time.Weekday{}}
	if got := formatNext(never, testNow); got != "Unscheduled" {
		t.Errorf("formatNext(empty weekly) = %q, want %q", got, "Unscheduled")
	}

	custom := models.Habit{Frequency: constants.FrequencyCustom, CustomDates: []string{"2025-03-10"}}
	if got := formatNext(custom, testNow); got != "Unscheduled" {
		t.Errorf("formatNext(custom) = %q, want %q", got, "Unscheduled")
	}
}
