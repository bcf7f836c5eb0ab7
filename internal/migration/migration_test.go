package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApply(t *testing.T) {
	t.Run("fresh database applies everything", func(t *testing.T) {
		db := testDB(t)
		runner := NewRunner(db, fstest.MapFS{
			"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
			"002_more.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		})

		applied, err := runner.Apply()
		if err != nil {
			t.Fatalf("Apply() returned unexpected error: %v", err)
		}
		if applied != 2 {
			t.Errorf("applied = %d, want 2", applied)
		}

		version, err := runner.CurrentVersion()
		if err != nil {
			t.Fatalf("CurrentVersion() returned unexpected error: %v", err)
		}
		if version != 2 {
			t.Errorf("version = %d, want 2", version)
		}
	})

	t.Run("reapply is a no-op", func(t *testing.T) {
		db := testDB(t)
		fs := fstest.MapFS{"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")}}
		runner := NewRunner(db, fs)

		if _, err := runner.Apply(); err != nil {
			t.Fatalf("Apply() returned unexpected error: %v", err)
		}
		applied, err := runner.Apply()
		if err != nil {
			t.Fatalf("second Apply() returned unexpected error: %v", err)
		}
		if applied != 0 {
			t.Errorf("applied = %d, want 0 on second run", applied)
		}
	})

	t.Run("failed migration rolls back", func(t *testing.T) {
		db := testDB(t)
		runner := NewRunner(db, fstest.MapFS{
			"001_bad.sql": {Data: []byte("THIS IS NOT SQL;")},
		})

		if _, err := runner.Apply(); err == nil {
			t.Fatal("Apply() error = nil, want error for bad SQL")
		}
		version, err := runner.CurrentVersion()
		if err != nil {
			t.Fatalf("CurrentVersion() returned unexpected error: %v", err)
		}
		if version != 0 {
			t.Errorf("version = %d, want 0 after rollback", version)
		}
	})
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		runner := NewRunner(nil, fstest.MapFS{
			"010_last.sql": {Data: []byte("-- last")},
			"001_first.sql": {Data: []byte("-- first")},
		})
		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() returned unexpected error: %v", err)
		}
		if len(migrations) != 2 || migrations[0].Name != "first" || migrations[1].Name != "last" {
			t.Errorf("migrations = %v, want first then last", migrations)
		}
	})

	t.Run("rejects bad filenames", func(t *testing.T) {
		runner := NewRunner(nil, fstest.MapFS{"init.sql": {Data: []byte("--")}})
		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() error = nil, want error for missing version prefix")
		}
	})

	t.Run("rejects duplicate versions", func(t *testing.T) {
		runner := NewRunner(nil, fstest.MapFS{
			"001_a.sql": {Data: []byte("--")},
			"001_b.sql": {Data: []byte("--")},
		})
		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() error = nil, want error for duplicate version")
		}
	})
}

func TestValidateVersion(t *testing.T) {
	db := testDB(t)
	runner := NewRunner(db, fstest.MapFS{"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")}})
	if _, err := runner.Apply(); err != nil {
		t.Fatalf("Apply() returned unexpected error: %v", err)
	}

	// Same migration set validates fine.
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() returned unexpected error: %v", err)
	}

	// An older binary whose migration set stops before the database's
	// version must refuse to run.
	older := NewRunner(db, fstest.MapFS{})
	if err := older.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() error = nil, want error for newer database")
	}
}
