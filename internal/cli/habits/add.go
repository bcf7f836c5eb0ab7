package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/cli"
	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
)

type AddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Description string `help:"Habit description." default:""`
	Category    string `help:"Category (General, Health, Learning, Work)." default:"General"`
	Frequency   string `help:"Recurrence: daily, weekly, or custom." default:"daily"`
	Days        string `help:"Weekly schedule as comma-separated weekdays (e.g. mon,wed,fri)." default:""`
	Dates       string `help:"Custom schedule as comma-separated YYYY-MM-DD dates." default:""`
	AllowSkip   bool   `help:"Allow skipping scheduled days."`
	Interactive bool   `short:"i" help:"Build the habit through an interactive form."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	habit := models.Habit{
		ID:          uuid.New().String(),
		OwnerID:     ctx.OwnerID,
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		CreatedAt:   time.Now(),
		StartDate:   calendar.FormatDay(ctx.Clock.Now()),
		Frequency:   constants.Frequency(c.Frequency),
		AllowSkip:   c.AllowSkip,
	}

	if c.Interactive || c.Name == "" {
		if err := runAddForm(&habit); err != nil {
			return err
		}
	} else {
		switch habit.Frequency {
		case constants.FrequencyDaily:
			habit.ScheduledDays = models.AllWeekdays()
		case constants.FrequencyWeekly:
			if c.Days == "" {
				return fmt.Errorf("weekly habits need --days")
			}
			days, err := cli.ParseWeekdays(c.Days)
			if err != nil {
				return err
			}
			habit.ScheduledDays = days
		case constants.FrequencyCustom:
			if c.Dates == "" {
				return fmt.Errorf("custom habits need --dates")
			}
			dates, err := cli.ParseDates(c.Dates)
			if err != nil {
				return err
			}
			habit.CustomDates = dates
		default:
			return fmt.Errorf("unknown frequency %q", c.Frequency)
		}
	}

	if _, err := ctx.Store.GetHabitByName(ctx.OwnerID, habit.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", habit.Name)
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", habit.Name)
	return nil
}

// runAddForm collects the habit configuration interactively. The
// recurrence rule is assembled in locals and written into the habit
// wholesale once the form completes, never mutated field by field.
func runAddForm(habit *models.Habit) error {
	frequency := string(habit.Frequency)
	var weekdays []time.Weekday
	var customDates string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&habit.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&habit.Description),
			huh.NewSelect[string]().
				Title("Category").
				Options(
					huh.NewOption(constants.CategoryGeneral, constants.CategoryGeneral),
					huh.NewOption(constants.CategoryHealth, constants.CategoryHealth),
					huh.NewOption(constants.CategoryLearning, constants.CategoryLearning),
					huh.NewOption(constants.CategoryWork, constants.CategoryWork),
				).
				Value(&habit.Category),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Every day", string(constants.FrequencyDaily)),
					huh.NewOption("Specific weekdays", string(constants.FrequencyWeekly)),
					huh.NewOption("Custom dates", string(constants.FrequencyCustom)),
				).
				Value(&frequency),
		),
		huh.NewGroup(
			huh.NewMultiSelect[time.Weekday]().
				Title("Scheduled Days").
				Options(
					huh.NewOption("Sunday", time.Sunday),
					huh.NewOption("Monday", time.Monday),
					huh.NewOption("Tuesday", time.Tuesday),
					huh.NewOption("Wednesday", time.Wednesday),
					huh.NewOption("Thursday", time.Thursday),
					huh.NewOption("Friday", time.Friday),
					huh.NewOption("Saturday", time.Saturday),
				).
				Value(&weekdays),
		).WithHideFunc(func() bool { return frequency != string(constants.FrequencyWeekly) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Dates (comma-separated YYYY-MM-DD)").
				Value(&customDates).
				Validate(func(s string) error {
					_, err := cli.ParseDates(s)
					return err
				}),
		).WithHideFunc(func() bool { return frequency != string(constants.FrequencyCustom) }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Allow skipping scheduled days?").
				Value(&habit.AllowSkip),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	habit.Frequency = constants.Frequency(frequency)
	switch habit.Frequency {
	case constants.FrequencyDaily:
		habit.ScheduledDays = models.AllWeekdays()
	case constants.FrequencyWeekly:
		habit.ScheduledDays = weekdays
	case constants.FrequencyCustom:
		dates, err := cli.ParseDates(customDates)
		if err != nil {
			return err
		}
		habit.CustomDates = dates
	}
	return nil
}
