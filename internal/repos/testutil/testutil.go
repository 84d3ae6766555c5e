// Package testutil wires repository tests to a throwaway Postgres.
// Tests skip unless TEST_POSTGRES_DSN points at a database the suite
// may migrate and write to.
package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
)

func DB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping database test")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		t.Fatalf("create uuid extension: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.AdminUser{},
		&domain.AdminToken{},
		&domain.Store{},
		&domain.Customer{},
		&domain.Category{},
		&domain.Product{},
		&domain.Review{},
		&domain.Order{},
		&domain.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Tx opens a transaction that is rolled back when the test finishes,
// so each test sees a clean slate without truncating tables.
func Tx(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		tx.Rollback()
	})
	return tx
}
