package habits

import (
	"fmt"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/cli"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
	"github.com/AkshayPatel20/Beunstoppable/internal/schedule"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := ctx.Clock.Now()
	fmt.Printf("Habits for %s:\n\n", calendar.FormatDay(now))

	completed := 0
	scheduled := 0
	for _, habit := range habits {
		if !schedule.IsScheduled(habit, now) {
			continue
		}
		scheduled++

		status := "[ ]"
		note := ""
		switch {
		case habit.LastCompletedDate != nil && calendar.SameDay(*habit.LastCompletedDate, now):
			status = "[x]"
			completed++
		case schedule.IsSkipped(habit, now):
			status = "[-]"
			note = " (skipped)"
		}
		fmt.Printf("%s %s%s\n", status, habit.Name, note)
	}

	if scheduled == 0 {
		fmt.Println("Nothing scheduled today.")
		return nil
	}

	fmt.Printf("\nCompleted: %d/%d\n", completed, scheduled)
	return nil
}

type NextCmd struct {
	Name string `arg:"" optional:"" help:"Habit name (default: all habits)."`
}

func (c *NextCmd) Run(ctx *cli.Context) error {
	now := ctx.Clock.Now()

	if c.Name != "" {
		habit, err := ctx.RequireHabit(c.Name)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", habit.Name, formatNext(habit, now))
		return nil
	}

	habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		fmt.Printf("%s: %s\n", habit.Name, formatNext(habit, now))
	}
	return nil
}

func formatNext(habit models.Habit, now time.Time) string {
	next, ok := schedule.NextScheduledDate(habit, now)
	if !ok {
		return "Unscheduled"
	}
	return calendar.FormatHuman(calendar.FormatDay(next))
}
