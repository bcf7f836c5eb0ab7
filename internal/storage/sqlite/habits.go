package sqlite

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
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(ownerID, name string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE owner_id = ? AND name = ?`, ownerID, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(ownerID string) ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT `+habitColumns+` FROM habits WHERE owner_id = ? ORDER BY created_at`, ownerID)
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
	scheduledDays, customDates, skippedDates, lastCompleted, err := encodeHabitFields(habit)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			category = excluded.category,
			start_date = excluded.start_date,
			frequency = excluded.frequency,
			scheduled_days = excluded.scheduled_days,
			custom_dates = excluded.custom_dates,
			allow_skip = excluded.allow_skip,
			streak_count = excluded.streak_count,
			last_completed_date = excluded.last_completed_date,
			skipped_dates = excluded.skipped_dates`,
		habit.ID, habit.OwnerID, habit.Name, habit.Description, habit.Category,
		habit.CreatedAt.Format(time.RFC3339), habit.StartDate, string(habit.Frequency),
		scheduledDays, customDates, habit.AllowSkip, habit.StreakCount,
		lastCompleted, skippedDates)
	return err
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
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

func encodeHabitFields(habit models.Habit) (scheduledDays, customDates, skippedDates string, lastCompleted sql.NullString, err error) {
	sd, err := json.Marshal(habit.ScheduledDays)
	if err != nil {
		return "", "", "", sql.NullString{}, fmt.Errorf("failed to encode scheduled_days: %w", err)
	}
	cd, err := json.Marshal(habit.CustomDates)
	if err != nil {
		return "", "", "", sql.NullString{}, fmt.Errorf("failed to encode custom_dates: %w", err)
	}
	sk, err := json.Marshal(habit.SkippedDates)
	if err != nil {
		return "", "", "", sql.NullString{}, fmt.Errorf("failed to encode skipped_dates: %w", err)
	}
	if habit.LastCompletedDate != nil {
		lastCompleted = sql.NullString{String: habit.LastCompletedDate.Format(time.RFC3339), Valid: true}
	}
	return string(sd), string(cd), string(sk), lastCompleted, nil
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
