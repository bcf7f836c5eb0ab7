package system

import (
	"fmt"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/cli"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkHabitIntegrity(ctx); err != nil {
			fmt.Printf("❌ Habit integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Habit integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Habit integrity: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
	}

	if err := checkClockTimezone(ctx); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.Timezone != "" {
		if _, err := calendar.LoadLocation(settings.Timezone); err != nil {
			return fmt.Errorf("configured timezone %q is invalid: %w", settings.Timezone, err)
		}
	}
	return nil
}

func checkHabitIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	ids := make(map[string]bool)
	names := make(map[string]bool)
	for _, h := range habits {
		if ids[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		ids[h.ID] = true
		if names[h.Name] {
			return fmt.Errorf("duplicate habit name found: %s", h.Name)
		}
		names[h.Name] = true

		if h.StreakCount > 0 && h.LastCompletedDate == nil {
			return fmt.Errorf("habit %q has a streak with no last completion", h.Name)
		}
		if err := checkNoSkipOnCompletedDay(h); err != nil {
			return err
		}
	}
	return nil
}

// checkNoSkipOnCompletedDay enforces that no day is recorded both
// completed and skipped.
func checkNoSkipOnCompletedDay(h models.Habit) error {
	if h.LastCompletedDate == nil {
		return nil
	}
	completedDay := calendar.FormatDay(*h.LastCompletedDate)
	for _, skipped := range h.SkippedDates {
		if skipped == completedDay {
			return fmt.Errorf("habit %q has %s recorded as both completed and skipped", h.Name, completedDay)
		}
	}
	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	for _, h := range habits {
		for _, d := range h.SkippedDates {
			if _, err := calendar.ParseDay(d); err != nil {
				return fmt.Errorf("habit %q has invalid skipped date %q", h.Name, d)
			}
		}
		for _, d := range h.CustomDates {
			if _, err := calendar.ParseDay(d); err != nil {
				return fmt.Errorf("habit %q has invalid custom date %q", h.Name, d)
			}
		}
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
