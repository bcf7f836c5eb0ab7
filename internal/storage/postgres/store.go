package postgres

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"

	"github.com/AkshayPatel20/Beunstoppable/internal/constants"
	"github.com/AkshayPatel20/Beunstoppable/internal/migration"
	"github.com/AkshayPatel20/Beunstoppable/internal/models"
	"github.com/AkshayPatel20/Beunstoppable/migrations"
)

// Store backs the habit store with PostgreSQL. The connection string
// must not embed credentials; those come from the environment,
// .pgpass, or the OS keyring.
type Store struct {
	connStr string
	db      *sql.DB
}

func NewStore(connStr string) *Store {
	return &Store{connStr: connStr}
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

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
	if err := s.open(); err != nil {
		return err
	}

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

// GetConfigPath returns the local config directory; logs and other
// per-user files live there even when the data is remote.
func (s *Store) GetConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(configDir, constants.AppName)
}

func (s *Store) migrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
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
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			owner_id = EXCLUDED.owner_id,
			timezone = EXCLUDED.timezone,
			notifications_enabled = EXCLUDED.notifications_enabled,
			reminder_interval_min = EXCLUDED.reminder_interval_min`,
		st.OwnerID, st.Timezone, st.NotificationsEnabled, st.ReminderIntervalMin)
	return err
}
