package database

import (
	"fmt"
	"testing"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"recurring_series",
	"transactions",
	"linked_accounts",
}

// SetupTestDB opens a migrated in-memory SQLite database. A single connection keeps
// every query on the same in-memory database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestLinkedAccount stores a linked account with a placeholder sealed token
func CreateTestLinkedAccount(t *testing.T, db *DB, userID uuid.UUID, providerAccountID string) *models.LinkedAccount {
	t.Helper()

	account := &models.LinkedAccount{
		UserID:               userID,
		ProviderAccountID:    providerAccountID,
		Name:                 "Checking",
		Mask:                 "0000",
		Type:                 "depository",
		Subtype:              "checking",
		EncryptedAccessToken: "sealed-token",
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test linked account: %v", err)
	}

	return account
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
