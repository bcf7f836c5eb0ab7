package storage

import "github.com/AkshayPatel20/Beunstoppable/internal/models"

// Provider is the habit store contract. Implementations normalize
// every record on the way out (models.Normalize), so callers never
// see nil slices or inconsistent streak fields.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(ownerID, name string) (models.Habit, error)
	GetAllHabits(ownerID string) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error

	// Utils
	GetConfigPath() string
}
