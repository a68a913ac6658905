package database

import (
	"testing"
	"time"

	"bancore/internal/config"
	"bancore/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

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

func CreateTestOwner(t *testing.T, db *DB, email string) *models.Owner {
	t.Helper()

	owner := &models.Owner{
		FirstName: "Test",
		LastName:  "Owner",
		Email:     email,
		Active:    true,
	}

	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("failed to create test owner: %v", err)
	}

	return owner
}

func CreateTestAccount(t *testing.T, db *DB, owner *models.Owner, balance string, principal bool) *models.Account {
	t.Helper()

	account := &models.Account{
		Number:    models.GenerateAccountNumber(),
		OwnerID:   owner.ID,
		Balance:   decimal.RequireFromString(balance),
		Principal: principal,
		Active:    true,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestCard(t *testing.T, db *DB, owner *models.Owner, limit string) *models.CreditCard {
	t.Helper()

	card := &models.CreditCard{
		Number:           models.GenerateCardNumber(),
		OwnerID:          owner.ID,
		Limit:            decimal.RequireFromString(limit),
		Debt:             decimal.Zero,
		VerificationHash: "test-hash",
		ExpiresAt:        time.Now().UTC().AddDate(4, 0, 0),
		Active:           true,
	}

	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}

	return card
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	return &TestDB{
		DB: SetupTestDB(t),
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()

	tables := []string{
		"audit_logs",
		"installments",
		"loans",
		"card_charges",
		"credit_cards",
		"ledger_entries",
		"accounts",
		"owners",
	}

	for _, table := range tables {
		if err := tdb.Exec("DELETE FROM " + table).Error; err != nil {
			tdb.t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
