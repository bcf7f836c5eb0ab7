package habits

import (
	"fmt"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/cli"
	"github.com/AkshayPatel20/Beunstoppable/internal/schedule"
)

type ListCmd struct {
	Category string `help:"Only show habits in this category." default:""`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	shown := 0
	for _, habit := range habits {
		if c.Category != "" && habit.Category != c.Category {
			continue
		}
		streak := ""
		if habit.StreakCount > 0 {
			streak = fmt.Sprintf("  (streak: %d)", habit.StreakCount)
		}
		fmt.Printf("%s [%s] %s%s\n", habit.Name, habit.Category, schedule.FormatFrequency(habit), streak)
		shown++
	}

	if shown == 0 {
		fmt.Printf("No habits in category %q.\n", c.Category)
	}
	return nil
}

type ShowCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.RequireHabit(c.Name)
	if err != nil {
		return err
	}

	lastCompleted := "-"
	if habit.LastCompletedDate != nil {
		lastCompleted = calendar.FormatHuman(calendar.FormatDay(*habit.LastCompletedDate))
	}

	fmt.Printf("Name:           %s\n", habit.Name)
	if habit.Description != "" {
		fmt.Printf("Description:    %s\n", habit.Description)
	}
	fmt.Printf("Category:       %s\n", habit.Category)
	fmt.Printf("Schedule:       %s\n", schedule.FormatFrequency(habit))
	fmt.Printf("Started:        %s\n", calendar.FormatHuman(habit.StartDate))
	fmt.Printf("Streak:         %d\n", habit.StreakCount)
	fmt.Printf("Last completed: %s\n", lastCompleted)
	fmt.Printf("Allow skip:     %t\n", habit.AllowSkip)
	if len(habit.SkippedDates) > 0 {
		fmt.Printf("Skipped days:   %d\n", len(habit.SkippedDates))
	}

	if next, ok := schedule.NextScheduledDate(habit, ctx.Clock.Now()); ok {
		fmt.Printf("Next scheduled: %s\n", calendar.FormatHuman(calendar.FormatDay(next)))
	} else {
		fmt.Println("Next scheduled: Unscheduled")
	}
	return nil
}

type DeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.RequireHabit(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}
