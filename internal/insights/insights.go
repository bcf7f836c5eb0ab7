package insights

import (
	"math"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/calendar"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
)

// Insights aggregates a habit collection for the dashboard. All
// reducers here are pure and recomputed per call; nothing is cached.
type Insights struct {
	TotalHabits    int     `json:"totalHabits"`
	CompletedToday int     `json:"completedToday"`
	AvgStreak      float64 `json:"avgStreak"`      // rounded to one decimal place
	TopCategory    string  `json:"topCategory"`    // ties broken by first-seen order
	CompletionRate int     `json:"completionRate"` // integer percent
}

// Badge is an achievement with a threshold predicate over the
// collection's aggregates.
type Badge struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// CategoryStat is one row of the category breakdown.
type CategoryStat struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// DayStat is one day of the trailing-week completion chart.
type DayStat struct {
	Day       string `json:"day"`  // weekday abbreviation
	Date      string `json:"date"` // YYYY-MM-DD
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

func completedOn(h models.Habit, day time.Time) bool {
	return h.LastCompletedDate != nil && calendar.SameDay(*h.LastCompletedDate, day)
}

// Compute reduces the collection to dashboard insights. Returns nil
// for an empty collection ("no data") rather than dividing by zero.
func Compute(habits []models.Habit, now time.Time) *Insights {
	if len(habits) == 0 {
		return nil
	}

	total := len(habits)
	completed := 0
	streakSum := 0
	for _, h := range habits {
		if completedOn(h, now) {
			completed++
		}
		streakSum += h.StreakCount
	}

	return &Insights{
		TotalHabits:    total,
		CompletedToday: completed,
		AvgStreak:      math.Round(float64(streakSum)/float64(total)*10) / 10,
		TopCategory:    topCategory(habits),
		CompletionRate: int(math.Round(float64(completed) / float64(total) * 100)),
	}
}

// topCategory picks the category with the most habits. Ties go to the
// category seen first in the input, not alphabetical order.
func topCategory(habits []models.Habit) string {
	counts := map[string]int{}
	var order []string
	for _, h := range habits {
		if _, seen := counts[h.Category]; !seen {
			order = append(order, h.Category)
		}
		counts[h.Category]++
	}

	top := ""
	best := 0
	for _, c := range order {
		if counts[c] > best {
			top = c
			best = counts[c]
		}
	}
	return top
}

// Achievements evaluates the fixed badge list against the collection.
func Achievements(habits []models.Habit, now time.Time) []Badge {
	total := len(habits)
	maxStreak := 0
	completed := 0
	categories := map[string]struct{}{}
	for _, h := range habits {
		if h.StreakCount > maxStreak {
			maxStreak = h.StreakCount
		}
		if completedOn(h, now) {
			completed++
		}
		categories[h.Category] = struct{}{}
	}

	return []Badge{
		{ID: 1, Name: "First Step", Icon: "🎯", Description: "Create your first habit", Unlocked: total >= 1},
		{ID: 2, Name: "Habit Builder", Icon: "🏗️", Description: "Create 5 habits", Unlocked: total >= 5},
		{ID: 3, Name: "Consistency King", Icon: "👑", Description: "Reach a 7-day streak", Unlocked: maxStreak >= 7},
		{ID: 4, Name: "On Fire!", Icon: "🔥", Description: "Reach a 30-day streak", Unlocked: maxStreak >= 30},
		{ID: 5, Name: "Perfect Day", Icon: "⭐", Description: "Complete all habits in one day", Unlocked: completed == total && total > 0},
		{ID: 6, Name: "Week Warrior", Icon: "💪", Description: "Complete habits 7 days in a row", Unlocked: maxStreak >= 7},
		{ID: 7, Name: "Habit Master", Icon: "🏆", Description: "Reach a 100-day streak", Unlocked: maxStreak >= 100},
		{ID: 8, Name: "Diverse Goals", Icon: "🌈", Description: "Create habits in 3+ categories", Unlocked: len(categories) >= 3},
	}
}

// CategoryBreakdown returns per-category counts and percentages in
// first-seen order. Percentages are rounded independently, so they
// may not sum to exactly 100.
func CategoryBreakdown(habits []models.Habit) []CategoryStat {
	if len(habits) == 0 {
		return []CategoryStat{}
	}

	counts := map[string]int{}
	var order []string
	for _, h := range habits {
		if _, seen := counts[h.Category]; !seen {
			order = append(order, h.Category)
		}
		counts[h.Category]++
	}

	stats := make([]CategoryStat, 0, len(order))
	for _, c := range order {
		stats = append(stats, CategoryStat{
			Category:   c,
			Count:      counts[c],
			Percentage: int(math.Round(float64(counts[c]) / float64(len(habits)) * 100)),
		})
	}
	return stats
}

// WeeklyData charts completions over the trailing seven days. A habit
// counts toward a day when its last completion fell on that day, so
// older completions age out of the chart as the habit is re-done.
func WeeklyData(habits []models.Habit, now time.Time) []DayStat {
	week := make([]DayStat, 0, 7)
	for i := 6; i >= 0; i-- {
		day := calendar.AddDays(now, -i)
		completed := 0
		for _, h := range habits {
			if completedOn(h, day) {
				completed++
			}
		}
		week = append(week, DayStat{
			Day:       day.Weekday().String()[:3],
			Date:      calendar.FormatDay(day),
			Completed: completed,
			Total:     len(habits),
		})
	}
	return week
}
