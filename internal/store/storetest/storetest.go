// Package storetest provides a Store backed by an in-memory SQLite database
// for handler and middleware tests.
package storetest

import (
	"fmt"
	"testing"

	"notes-saas/database"
	"notes-saas/internal/store"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens a fresh in-memory database, migrates the schema, and returns a
// Store over it. Each call gets an isolated database.
func New(t *testing.T) *store.Gorm {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return store.NewGorm(db)
}
