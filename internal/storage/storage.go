package storage

import (
	"net/url"
	"strings"

	"github.com/AkshayPatel20/Beunstoppable/internal/storage/postgres"
	"github.com/AkshayPatel20/Beunstoppable/internal/storage/sqlite"
)

// NewSQLiteStore creates the default file-backed store.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a store backed by a PostgreSQL server.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgresConnString reports whether the config argument selects
// the postgres backend.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries
// a password inline. Embedded credentials are rejected; they end up
// in shell history and process listings.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
