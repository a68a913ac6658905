package repositories

import (
	"errors"
	"fmt"
	"time"

	"bancore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("journal entry not found")

// ledgerRepository implements LedgerRepositoryInterface. The journal is
// append-only: entries are written by the account repository's atomic
// operations and only read here.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{db: db}
}

// GetByID retrieves a journal entry by ID
func (r *ledgerRepository) GetByID(id uuid.UUID) (*models.LedgerEntry, error) {
	entry := &models.LedgerEntry{ID: id}
	if err := r.db.First(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return entry, nil
}

// GetByReference retrieves a journal entry by its reference
func (r *ledgerRepository) GetByReference(reference string) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	if err := r.db.Where("reference = ?", reference).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get journal entry by reference: %w", err)
	}
	return &entry, nil
}

// GetByAccountID retrieves journal entries for an account with pagination,
// newest first
func (r *ledgerRepository) GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error) {
	var entries []models.LedgerEntry
	var total int64

	if err := r.db.Model(&models.LedgerEntry{}).
		Where("account_id = ?", accountID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count journal entries: %w", err)
	}

	if err := r.db.Where("account_id = ?", accountID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get journal entries: %w", err)
	}

	return entries, total, nil
}

// GetByDateRange retrieves an account's journal entries within a date range,
// oldest first for statement ordering
func (r *ledgerRepository) GetByDateRange(accountID uuid.UUID, startDate, endDate time.Time) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := r.db.Where("account_id = ? AND created_at >= ? AND created_at <= ?",
		accountID, startDate, endDate).
		Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get journal entries by date range: %w", err)
	}
	return entries, nil
}

// GetRecentByAccountID retrieves the most recent journal entries for an account
func (r *ledgerRepository) GetRecentByAccountID(accountID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := r.db.Where("account_id = ?", accountID).
		Limit(limit).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent journal entries: %w", err)
	}
	return entries, nil
}
