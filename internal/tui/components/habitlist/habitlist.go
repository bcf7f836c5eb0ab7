package habitlist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
	"github.com/AkshayPatel20/Beunstoppable/internal/schedule"
)

type ToggleHabitMsg struct {
	ID string
}

type SkipHabitMsg struct {
	ID string
}

type UnskipHabitMsg struct {
	ID string
}

type Item struct {
	Habit     models.Habit
	Scheduled bool
	Completed bool
	Skipped   bool
}

func (i Item) Title() string {
	switch {
	case i.Completed:
		return "✓ " + i.Habit.Name
	case i.Skipped:
		return "⊘ " + i.Habit.Name
	case !i.Scheduled:
		return "· " + i.Habit.Name
	default:
		return "○ " + i.Habit.Name
	}
}

func (i Item) Description() string {
	switch {
	case i.Completed:
		return fmt.Sprintf("completed today (streak: %d)", i.Habit.StreakCount)
	case i.Skipped:
		return "skipped today"
	case !i.Scheduled:
		return "not scheduled today"
	default:
		return schedule.FormatFrequency(i.Habit)
	}
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Toggle key.Binding
	Skip   key.Binding
	Unskip key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle done"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip today"),
		),
		Unskip: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unskip"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func newItems(habits []models.Habit, now time.Time) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{
			Habit:     h,
			Scheduled: schedule.IsScheduled(h, now),
			Completed: h.LastCompletedDate != nil && calendar.SameDay(*h.LastCompletedDate, now),
			Skipped:   schedule.IsSkipped(h, now),
		}
	}
	return items
}

func New(habits []models.Habit, now time.Time, width, height int) Model {
	l := list.New(newItems(habits, now), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Skip, keys.Unskip}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Skip, keys.Unskip}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetHabits(habits []models.Habit, now time.Time) {
	m.list.SetItems(newItems(habits, now))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				// Completion is only offered on a scheduled, unskipped
				// day; un-completing an already-completed day is always
				// allowed.
				if (i.Scheduled || i.Completed) && !i.Skipped {
					return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Skip):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Habit.AllowSkip && !i.Completed && !i.Skipped {
					return m, func() tea.Msg { return SkipHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Unskip):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Skipped {
					return m, func() tea.Msg { return UnskipHabitMsg{ID: i.Habit.ID} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Add one with 'beunstoppable add'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
