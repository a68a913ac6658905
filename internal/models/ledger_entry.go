package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EntryDirectionCredit = "credit"
	EntryDirectionDebit  = "debit"

	EntryStatusCompleted = "completed"
)

var (
	ErrInvalidEntryDirection = errors.New("invalid entry direction")
	ErrInvalidEntryAmount    = errors.New("entry amount must be positive")
)

// LedgerEntry is one line of the append-only transaction journal. Origin and
// Beneficiary are free-text display labels, intentionally denormalized for
// audit statements; AccountID stays as the backing reference for queries.
// Entries are never updated or deleted once written.
type LedgerEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Direction     string          `gorm:"type:varchar(10);not null" json:"direction"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Origin        string          `gorm:"type:varchar(255);not null" json:"origin"`
	Beneficiary   string          `gorm:"type:varchar(255);not null" json:"beneficiary"`
	Status        string          `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	Reference     string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	BalanceBefore decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance_after"`
	CreatedAt     time.Time       `gorm:"not null;index" json:"created_at"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for LedgerEntry
func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.Status == "" {
		e.Status = EntryStatusCompleted
	}

	if e.Reference == "" {
		e.Reference = GenerateEntryReference()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	return e.Validate()
}

// Validate validates the journal entry fields
func (e *LedgerEntry) Validate() error {
	if e.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if e.Direction != EntryDirectionCredit && e.Direction != EntryDirectionDebit {
		return ErrInvalidEntryDirection
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidEntryAmount
	}

	if e.Origin == "" {
		return errors.New("origin label is required")
	}

	if e.Beneficiary == "" {
		return errors.New("beneficiary label is required")
	}

	return e.ensureBalanceIsCorrect()
}

func (e *LedgerEntry) ensureBalanceIsCorrect() error {
	expected := e.BalanceBefore
	if e.Direction == EntryDirectionCredit {
		expected = expected.Add(e.Amount)
	} else {
		expected = expected.Sub(e.Amount)
	}

	if !expected.Equal(e.BalanceAfter) {
		return errors.New("balance calculation mismatch")
	}
	return nil
}

// TableName returns the table name for LedgerEntry
func (e *LedgerEntry) TableName() string {
	return "ledger_entries"
}

// GenerateEntryReference generates a unique journal entry reference
func GenerateEntryReference() string {
	return "JRN-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}
