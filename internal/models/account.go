package models

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountNumberLength is the length of the digit string identifying savings
// accounts. Loans draw their numbers from the same 9-digit namespace, so
// uniqueness is checked against both tables.
const AccountNumberLength = 9

var (
	ErrInvalidBalance    = errors.New("balance cannot be negative")
	ErrAccountNotActive  = errors.New("account is not active")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountPrincipal  = errors.New("principal accounts cannot be deactivated")
)

// Account represents a savings account. Balances are only ever mutated
// through the ledger primitives; accounts are deactivated, never deleted.
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Number    string          `gorm:"type:varchar(9);uniqueIndex;not null" json:"number"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Principal bool            `gorm:"not null;default:false" json:"principal"`
	Active    bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Owner   Owner         `gorm:"foreignKey:OwnerID" json:"-"`
	Entries []LedgerEntry `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if !ValidateAccountNumber(a.Number) {
		return fmt.Errorf("account number must be %d digits", AccountNumberLength)
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Active
}

// CanWithdraw checks if the amount can be withdrawn
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return a.Active && a.Balance.GreaterThanOrEqual(amount) && amount.GreaterThan(decimal.Zero)
}

// Debit decreases the balance, refusing to take it below zero
func (a *Account) Debit(amount decimal.Decimal) error {
	if !a.Active {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("debit amount must be positive")
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit increases the balance
func (a *Account) Credit(amount decimal.Decimal) error {
	if !a.Active {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("credit amount must be positive")
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Deactivate marks the account inactive. Principal accounts stay open for
// the lifetime of the owner.
func (a *Account) Deactivate() error {
	if a.Principal {
		return ErrAccountPrincipal
	}
	if !a.Active {
		return errors.New("account is already inactive")
	}
	a.Active = false
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// GenerateAccountNumber generates a random 9-digit account number.
// Uniqueness across the shared account/loan namespace is enforced by the
// repository layer.
func GenerateAccountNumber() string {
	return fmt.Sprintf("%09d", 100000000+rand.Intn(900000000))
}

// ValidateAccountNumber validates a 9-digit number format
func ValidateAccountNumber(number string) bool {
	if len(number) != AccountNumberLength {
		return false
	}
	for _, char := range number {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
