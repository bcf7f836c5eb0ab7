package system

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/cli"
	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
	"github.com/AkshayPatel20/Beunstoppable/internal/notifier"
	"github.com/AkshayPatel20/Beunstoppable/internal/reminder"
)

type RemindCmd struct {
	Watch  bool `help:"Keep polling on the configured interval until interrupted."`
	DryRun bool `help:"Print due habits to stdout instead of sending a notification."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled && !c.DryRun {
		fmt.Println("Notifications are disabled in settings.")
		return nil
	}

	if c.DryRun {
		habits, err := ctx.Store.GetAllHabits(ctx.OwnerID)
		if err != nil {
			return err
		}
		due := reminder.Due(habits, ctx.Clock.Now())
		if len(due) == 0 {
			fmt.Println("Nothing due right now.")
			return nil
		}
		names := make([]string, 0, len(due))
		for _, h := range due {
			names = append(names, h.Name)
		}
		fmt.Printf("[DryRun] %d habit(s) still due today: %s\n", len(due), strings.Join(names, ", "))
		return nil
	}

	intervalMin := settings.ReminderIntervalMin
	if intervalMin <= 0 {
		intervalMin = constants.DefaultReminderIntervalMin
	}
	poller := reminder.New(ctx.Store, notifier.New(), ctx.Clock, ctx.OwnerID,
		time.Duration(intervalMin)*time.Minute)

	if !c.Watch {
		return poller.Poll()
	}

	fmt.Printf("Polling every %d minute(s). Press Ctrl+C to stop.\n", intervalMin)
	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	poller.Run(runCtx)
	return nil
}
