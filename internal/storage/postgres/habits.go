package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
)

const habitColumns = `id, owner_id, name, description, category, created_at, start_date,
	frequency, scheduled_days, custom_dates, allow_skip, streak_count,
	last_completed_date, skipped_dates`

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = $1`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(ownerID, name string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE owner_id = $1 AND name = $2`, ownerID, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(ownerID string) ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT `+habitColumns+` FROM habits WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	scheduledDays, err := json.Marshal(habit.ScheduledDays)
	if err != nil {
		return fmt.Errorf("failed to encode scheduled_days: %w", err)
	}
	customDates, err := json.Marshal(habit.CustomDates)
	if err != nil {
		return fmt.Errorf("failed to encode custom_dates: %w", err)
	}
	skippedDates, err := json.Marshal(habit.SkippedDates)
	if err != nil {
		return fmt.Errorf("failed to encode skipped_dates: %w", err)
	}
	var lastCompleted sql.NullString
	if habit.LastCompletedDate != nil {
		lastCompleted = sql.NullString{String: habit.LastCompletedDate.Format(time.RFC3339), Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			start_date = EXCLUDED.start_date,
			frequency = EXCLUDED.frequency,
			scheduled_days = EXCLUDED.scheduled_days,
			custom_dates = EXCLUDED.custom_dates,
			allow_skip = EXCLUDED.allow_skip,
			streak_count = EXCLUDED.streak_count,
			last_completed_date = EXCLUDED.last_completed_date,
			skipped_dates = EXCLUDED.skipped_dates`,
		habit.ID, habit.OwnerID, habit.Name, habit.Description, habit.Category,
		habit.CreatedAt.Format(time.RFC3339), habit.StartDate, string(habit.Frequency),
		string(scheduledDays), string(customDates), habit.AllowSkip, habit.StreakCount,
		lastCompleted, string(skippedDates))
	return err
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var createdAt, frequency, scheduledDays, customDates, skippedDates string
	var lastCompleted sql.NullString

	err := row.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Description, &h.Category,
		&createdAt, &h.StartDate, &frequency, &scheduledDays, &customDates,
		&h.AllowSkip, &h.StreakCount, &lastCompleted, &skippedDates)
	if err != nil {
		return models.Habit{}, err
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	h.Frequency = constants.Frequency(frequency)
	if err := json.Unmarshal([]byte(scheduledDays), &h.ScheduledDays); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse scheduled_days for habit %s: %w", h.ID, err)
	}
	if err := json.Unmarshal([]byte(customDates), &h.CustomDates); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse custom_dates for habit %s: %w", h.ID, err)
	}
	if err := json.Unmarshal([]byte(skippedDates), &h.SkippedDates); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse skipped_dates for habit %s: %w", h.ID, err)
	}
	if lastCompleted.Valid {
		t, err := time.Parse(time.RFC3339, lastCompleted.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse last_completed_date for habit %s: %w", h.ID, err)
		}
		h.LastCompletedDate = &t
	}

	return models.Normalize(h), nil
}
