package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/logger"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
	"github.com/AkshayPatel20/Beunstoppable/internal/schedule"
	"github.com/AkshayPatel20/Beunstoppable/internal/tracker"
)

// Notifier delivers a reminder message. notifier.Notifier satisfies it.
type Notifier interface {
	Notify(text string) error
}

// Lister is the read-only slice of the habit store the poller needs.
type Lister interface {
	GetAllHabits(ownerID string) ([]models.Habit, error)
}

// Poller periodically re-evaluates which habits are due and emits a
// reminder. It only ever reads habit data; completions and skips stay
// the tracker's business.
type Poller struct {
	store    Lister
	notifier Notifier
	clock    tracker.Clock
	ownerID  string
	interval time.Duration
}

func New(store Lister, notifier Notifier, clock tracker.Clock, ownerID string, interval time.Duration) *Poller {
	return &Poller{
		store:    store,
		notifier: notifier,
		clock:    clock,
		ownerID:  ownerID,
		interval: interval,
	}
}

// Due filters the collection to habits that are scheduled on the
// reference day and neither completed nor skipped on it.
func Due(habits []models.Habit, ref time.Time) []models.Habit {
	var due []models.Habit
	for _, h := range habits {
		if !schedule.IsScheduled(h, ref) || schedule.IsSkipped(h, ref) {
			continue
		}
		if h.LastCompletedDate != nil && calendar.SameDay(*h.LastCompletedDate, ref) {
			continue
		}
		due = append(due, h)
	}
	return due
}

// Poll runs a single reminder cycle. No notification is sent when
// nothing is due.
func (p *Poller) Poll() error {
	habits, err := p.store.GetAllHabits(p.ownerID)
	if err != nil {
		return fmt.Errorf("failed to list habits: %w", err)
	}

	due := Due(habits, p.clock.Now())
	if len(due) == 0 {
		logger.Debug("Reminder poll found nothing due")
		return nil
	}

	names := make([]string, 0, len(due))
	for _, h := range due {
		names = append(names, h.Name)
	}

	msg := fmt.Sprintf("%d habit(s) still due today: %s", len(due), strings.Join(names, ", "))
	if err := p.notifier.Notify(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}

	logger.Info("Sent reminder", "due", len(due))
	return nil
}

// Run polls on the configured interval until the context is
// cancelled. Poll errors are logged and the loop keeps going; a
// missed reminder is not worth dying over.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Poll(); err != nil {
				logger.Warn("Reminder poll failed", "error", err)
			}
		}
	}
}
