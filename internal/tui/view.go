package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AkshayPatel20/Beunstoppable/internal/insights"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateInsights:
		content = docStyle.Render(m.viewInsights())
	}

	var banner string
	if m.errMsg != "" {
		banner = errorStyle.Render("✗ " + m.errMsg)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Habits", "Insights"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewInsights() string {
	now := m.clock.Now()
	result := insights.Compute(m.habits, now)
	if result == nil {
		return "No habits yet. Nothing to summarize."
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Overview"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total habits:     %d\n", result.TotalHabits)
	fmt.Fprintf(&b, "Completed today:  %d\n", result.CompletedToday)
	fmt.Fprintf(&b, "Completion rate:  %d%%\n", result.CompletionRate)
	fmt.Fprintf(&b, "Average streak:   %.1f\n", result.AvgStreak)
	fmt.Fprintf(&b, "Top category:     %s\n", result.TopCategory)

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Last 7 days"))
	b.WriteString("\n")
	for _, day := range insights.WeeklyData(m.habits, now) {
		fmt.Fprintf(&b, "%s  %d/%d %s\n", day.Day, day.Completed, day.Total,
			strings.Repeat("#", day.Completed))
	}

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Badges"))
	b.WriteString("\n")
	for _, badge := range insights.Achievements(m.habits, now) {
		mark := "[ ]"
		if badge.Unlocked {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %s %s\n", mark, badge.Icon, badge.Name)
	}

	return b.String()
}
