// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/MedQuest/config"
	"github.com/lshigami/MedQuest/database"
	"gorm.io/gorm"
)

const (
	AdminEmail    = "admin@medquest.com"
	AdminPassword = "admin123"
)

// NewDB returns a migrated, empty in-memory SQLite database private to t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.Database{
		Driver: "sqlite",
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewSeededDB is NewDB plus the admin account and the sample questions.
func NewSeededDB(t testing.TB) *gorm.DB {
	t.Helper()
	db := NewDB(t)
	seed := config.Seed{AdminEmail: AdminEmail, AdminPassword: AdminPassword}
	if err := database.Seed(db, seed, 4); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return db
}
