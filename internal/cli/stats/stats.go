package stats

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AkshayPatel20/Beunstoppable/internal/cli"
	"github.com/AkshayPatel20/Beunstoppable/internal/insights"
)

type InsightsCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
	if err != nil {
		return err
	}

	result := insights.Compute(habits, ctx.Clock.Now())
	if result == nil {
		fmt.Println("No habits yet. Add one to start tracking.")
		return nil
	}

	if c.JSON {
		return printJSON(result)
	}

	fmt.Printf("Total habits:     %d\n", result.TotalHabits)
	fmt.Printf("Completed today:  %d\n", result.CompletedToday)
	fmt.Printf("Completion rate:  %d%%\n", result.CompletionRate)
	fmt.Printf("Average streak:   %.1f\n", result.AvgStreak)
	fmt.Printf("Top category:     %s\n", result.TopCategory)
	return nil
}

type BadgesCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *BadgesCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
	if err != nil {
		return err
	}

	badges := insights.Achievements(habits, ctx.Clock.Now())
	if c.JSON {
		return printJSON(badges)
	}

	unlocked := 0
	for _, b := range badges {
		mark := "[ ]"
		if b.Unlocked {
			mark = "[x]"
			unlocked++
		}
		fmt.Printf("%s %s %s - %s\n", mark, b.Icon, b.Name, b.Description)
	}
	fmt.Printf("\nUnlocked: %d/%d\n", unlocked, len(badges))
	return nil
}

type CategoriesCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *CategoriesCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
	if err != nil {
		return err
	}

	breakdown := insights.CategoryBreakdown(habits)
	if c.JSON {
		return printJSON(breakdown)
	}

	if len(breakdown) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, stat := range breakdown {
		fmt.Printf("%-12s %3d habit(s)  %3d%%\n", stat.Category, stat.Count, stat.Percentage)
	}
	return nil
}

type WeekCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
	if err != nil {
		return err
	}

	week := insights.WeeklyData(habits, ctx.Clock.Now())
	if c.JSON {
		return printJSON(week)
	}

	fmt.Println("Last 7 days:")
	for _, day := range week {
		bar := strings.Repeat("#", day.Completed)
		fmt.Printf("%s %s  %d/%d %s\n", day.Day, day.Date, day.Completed, day.Total, bar)
	}
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
