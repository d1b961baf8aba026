// Package testutil provides shared helpers for package tests.
package testutil

import (
	"fmt"
	"testing"

	"quill/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens an isolated in-memory SQLite database with the full schema
// applied. Each test gets its own database, named after the test so
// connections from the pool share state.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite test database")

	require.NoError(t, database.Migrate(db), "migrate test schema")
	return db
}
