package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AkshayPatel20/Beunstoppable/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == StateHabits {
				m.state = StateInsights
			} else {
				m.state = StateHabits
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case habitlist.ToggleHabitMsg:
		if habit, ok := m.findHabit(msg.ID); ok {
			if _, err := m.tracker.ToggleCompletion(habit); err != nil {
				m.errMsg = err.Error()
			} else {
				m.errMsg = ""
			}
			m.reloadHabits()
		}
		return m, nil

	case habitlist.SkipHabitMsg:
		if habit, ok := m.findHabit(msg.ID); ok {
			if _, err := m.tracker.SkipToday(habit); err != nil {
				m.errMsg = err.Error()
			} else {
				m.errMsg = ""
			}
			m.reloadHabits()
		}
		return m, nil

	case habitlist.UnskipHabitMsg:
		if habit, ok := m.findHabit(msg.ID); ok {
			if _, err := m.tracker.UnskipToday(habit); err != nil {
				m.errMsg = err.Error()
			} else {
				m.errMsg = ""
			}
			m.reloadHabits()
		}
		return m, nil
	}

	if m.state == StateHabits {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd
	}
	return m, nil
}
