package services

import (
	"fmt"
	"strings"
	"testing"

	"elysianshores/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

// seededDB is a test database with the full catalog and availability window.
func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newTestDB(t)
	seeder := NewSeedService(db)
	require.NoError(t, seeder.SeedRoomTypes())
	require.NoError(t, seeder.SeedAvailability())
	return db
}
