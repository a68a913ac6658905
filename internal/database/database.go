package database

import (
	"fmt"
	"log/slog"
	"time"

	"bancore/internal/config"
	"bancore/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Owner{},
		&models.Account{},
		&models.LedgerEntry{},
		&models.CreditCard{},
		&models.CardCharge{},
		&models.Loan{},
		&models.Installment{},
		&models.AuditLog{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_owners_email ON owners(email)",
		// Account indexes
		"CREATE INDEX IF NOT EXISTS idx_accounts_owner_id ON accounts(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_number ON accounts(number)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_owner_principal ON accounts(owner_id) WHERE principal",
		// Journal indexes
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_account_id ON ledger_entries(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_created_at ON ledger_entries(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_reference ON ledger_entries(reference)",
		// Card indexes
		"CREATE INDEX IF NOT EXISTS idx_credit_cards_owner_id ON credit_cards(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_credit_cards_number ON credit_cards(number)",
		"CREATE INDEX IF NOT EXISTS idx_card_charges_card_id ON card_charges(card_id)",
		"CREATE INDEX IF NOT EXISTS idx_card_charges_created_at ON card_charges(created_at)",
		// Loan indexes
		"CREATE INDEX IF NOT EXISTS idx_loans_owner_id ON loans(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_loans_number ON loans(number)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_loans_owner_active ON loans(owner_id) WHERE active",
		"CREATE INDEX IF NOT EXISTS idx_installments_loan_id ON installments(loan_id)",
		"CREATE INDEX IF NOT EXISTS idx_installments_due_date ON installments(due_date) WHERE NOT paid",
		// Audit indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_owner_id ON audit_logs(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_action ON audit_logs(action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index",
				slog.String("query", query),
				slog.String("error", err.Error()))
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for the migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		slog.Warn("migration runner failed, falling back to automigrate",
			slog.String("error", err.Error()))

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", slog.String("error", err.Error()))
	}

	slog.Info("database initialized")

	return db.DB, nil
}
