package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
	"github.com/AkshayPatel20/Beunstoppable/internal/migration"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
	"github.com/AkshayPatel20/Beunstoppable/migrations"
)

// Store is the default habit store, a single SQLite file under the
// user's config directory.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed default settings on a fresh database.
	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{
			OwnerID:             constants.DefaultOwnerID,
			Timezone:            "Local",
			ReminderIntervalMin: constants.DefaultReminderIntervalMin,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

func (s *Store) migrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

func (s *Store) runMigrations() error {
	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(); err != nil {
		return err
	}
	return nil
}

func (s *Store) GetSettings() (models.Settings, error) {
	row := s.db.QueryRow(`
		SELECT owner_id, timezone, notifications_enabled, reminder_interval_min
		FROM settings WHERE id = 1`)

	var st models.Settings
	err := row.Scan(&st.OwnerID, &st.Timezone, &st.NotificationsEnabled, &st.ReminderIntervalMin)
	if err != nil {
		return models.Settings{}, err
	}
	return st, nil
}

func (s *Store) SaveSettings(st models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, owner_id, timezone, notifications_enabled, reminder_interval_min)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			timezone = excluded.timezone,
			notifications_enabled = excluded.notifications_enabled,
			reminder_interval_min = excluded.reminder_interval_min`,
		st.OwnerID, st.Timezone, st.NotificationsEnabled, st.ReminderIntervalMin)
	return err
}
