// Package testdb provides migrated databases for tests.
//
// By default every call to Open gets a private SQLite file, so tests need no
// external services. Setting PODCAST_TEST_DATABASE_URL runs the same tests
// against PostgreSQL instead; Open then truncates all tables, so packages
// sharing that database must run with go test -p 1.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/podcast-api/internal/config"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
)

// URLEnvVar names the environment variable selecting a PostgreSQL test database.
const URLEnvVar = "PODCAST_TEST_DATABASE_URL"

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// resetStatement empties the catalog and user tables between tests.
const resetStatement = `TRUNCATE TABLE episodes, podcasts, users RESTART IDENTITY CASCADE`

// Config returns the database configuration tests should use.
func Config(t *testing.T) config.DatabaseConfig {
	t.Helper()

	if url := os.Getenv(URLEnvVar); url != "" {
		return config.DatabaseConfig{
			Driver:       sqlstore.DriverPostgres,
			URL:          url,
			MaxOpenConns: 4,
		}
	}

	return config.DatabaseConfig{
		Driver:       sqlstore.DriverSQLite,
		URL:          "file:" + filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 4,
	}
}

// Open returns an empty database with every migration applied. The
// connection is closed when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	cfg := Config(t)
	log, _ := logger.NewTestLogger(t)

	db, err := sqlstore.Open(ctx, cfg, log)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlstore.Migrate(ctx, db, cfg.Driver, sqlstore.MigrateUp, log), "failed to migrate test database")

	if cfg.Driver == sqlstore.DriverPostgres {
		_, err := db.ExecContext(ctx, resetStatement)
		require.NoError(t, err, "failed to reset test database")
	}

	return db
}
