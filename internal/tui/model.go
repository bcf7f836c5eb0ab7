package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AkshayPatel20/Beunstoppable/internal/models"
	"github.com/AkshayPatel20/Beunstoppable/internal/storage"
	"github.com/AkshayPatel20/Beunstoppable/internal/tracker"
	"github.com/AkshayPatel20/Beunstoppable/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateInsights
)

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

type Model struct {
	store     storage.Provider
	tracker   *tracker.Tracker
	clock     tracker.Clock
	ownerID   string
	state     SessionState
	keys      KeyMap
	help      help.Model
	habitList habitlist.Model
	habits    []models.Habit
	errMsg    string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, trk *tracker.Tracker, clock tracker.Clock, ownerID string) Model {
	habits, err := store.GetAllHabits(ownerID)
	if err != nil {
		habits = []models.Habit{}
	}

	m := Model{
		store:     store,
		tracker:   trk,
		clock:     clock,
		ownerID:   ownerID,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(habits, clock.Now(), 0, 0),
		habits:    habits,
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateHabits {
		hk := habitlist.DefaultKeyMap()
		keys = append(keys, hk.Toggle, hk.Skip, hk.Unskip)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	hk := habitlist.DefaultKeyMap()
	actions := []key.Binding{hk.Toggle, hk.Skip, hk.Unskip}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return m.habitList.Init()
}

// reloadHabits refreshes the cached collection from the store after a
// tracker action.
func (m *Model) reloadHabits() {
	habits, err := m.store.GetAllHabits(m.ownerID)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.habits = habits
	m.habitList.SetHabits(habits, m.clock.Now())
}

func (m *Model) findHabit(id string) (models.Habit, bool) {
	for _, h := range m.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}
