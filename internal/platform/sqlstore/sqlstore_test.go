package sqlstore_test

import (
	"database/sql"
	"testing"

	"github.com/phrazzld/podcast-api/internal/testdb"
)

// newTestDB opens an empty, migrated database for one test.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return testdb.Open(t)
}
