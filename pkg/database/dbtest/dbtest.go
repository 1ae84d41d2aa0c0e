// Package dbtest provides a migrated sqlite database for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"howtouseai-backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns a fresh, migrated database that is closed when t ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { database.Close(db) })
	return db
}
