package habits

import (
	"fmt"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/cli"
	"github.com/AkshayPatel20/Beunstoppable/internal/schedule"
)

type DoneCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Force bool   `help:"Complete even if today is not a scheduled day."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.RequireHabit(c.Name)
	if err != nil {
		return err
	}

	now := ctx.Clock.Now()
	if !c.Force {
		if !schedule.IsScheduled(habit, now) {
			return fmt.Errorf("habit %q is not scheduled today (use --force to complete anyway)", c.Name)
		}
		if schedule.IsSkipped(habit, now) {
			return fmt.Errorf("habit %q is skipped today; unskip it first", c.Name)
		}
	}

	updated, err := ctx.Tracker.ToggleCompletion(habit)
	if err != nil {
		return err
	}

	if updated.LastCompletedDate != nil && calendar.SameDay(*updated.LastCompletedDate, now) {
		fmt.Printf("Completed habit %q (streak: %d)\n", c.Name, updated.StreakCount)
	} else {
		fmt.Printf("Un-completed habit %q for today\n", c.Name)
	}
	return nil
}

type SkipCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *SkipCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.RequireHabit(c.Name)
	if err != nil {
		return err
	}

	if !habit.AllowSkip {
		return fmt.Errorf("habit %q does not allow skipping", c.Name)
	}

	if _, err := ctx.Tracker.SkipToday(habit); err != nil {
		return err
	}

	fmt.Printf("Skipped habit %q for today\n", c.Name)
	return nil
}

type UnskipCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *UnskipCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.RequireHabit(c.Name)
	if err != nil {
		return err
	}

	if _, err := ctx.Tracker.UnskipToday(habit); err != nil {
		return err
	}

	fmt.Printf("Unskipped habit %q for today\n", c.Name)
	return nil
}
