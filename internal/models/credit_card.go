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

// CardNumberLength is the length of credit card numbers, which live in their
// own namespace separate from the 9-digit account/loan numbers.
const CardNumberLength = 16

var (
	ErrCardNotActive       = errors.New("credit card is not active")
	ErrCardExpired         = errors.New("credit card has expired")
	ErrExceedsAvailable    = errors.New("amount exceeds available credit")
	ErrNoOutstandingDebt   = errors.New("credit card has no outstanding debt")
	ErrLimitBelowDebt      = errors.New("new limit is below current debt")
	ErrCardOutstandingDebt = errors.New("credit card has outstanding debt")
	ErrInvalidCreditLimit  = errors.New("credit limit must be positive")
	ErrDebtExceedsLimit    = errors.New("debt cannot exceed credit limit")
)

// CreditCard represents a credit facility. Debt is bounded by the limit on
// every mutation; available credit is always derived, never stored.
type CreditCard struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Number           string          `gorm:"type:varchar(16);uniqueIndex;not null" json:"number"`
	OwnerID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Limit            decimal.Decimal `gorm:"column:credit_limit;type:decimal(15,2);not null" json:"limit"`
	Debt             decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"debt"`
	VerificationHash string          `gorm:"type:varchar(255);not null" json:"-"`
	ExpiresAt        time.Time       `gorm:"not null" json:"expires_at"`
	Active           bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Owner   Owner        `gorm:"foreignKey:OwnerID" json:"-"`
	Charges []CardCharge `gorm:"foreignKey:CardID" json:"-"`
}

// BeforeCreate hook for CreditCard
func (c *CreditCard) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate hook for CreditCard
func (c *CreditCard) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the card fields and the debt ceiling invariant
func (c *CreditCard) Validate() error {
	if c.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if !ValidateCardNumber(c.Number) {
		return fmt.Errorf("card number must be %d digits", CardNumberLength)
	}

	if c.Limit.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidCreditLimit
	}

	if c.Debt.LessThan(decimal.Zero) {
		return errors.New("debt cannot be negative")
	}

	if c.Debt.GreaterThan(c.Limit) {
		return ErrDebtExceedsLimit
	}

	if c.VerificationHash == "" {
		return errors.New("verification hash is required")
	}

	return nil
}

// AvailableCredit returns limit minus current debt
func (c *CreditCard) AvailableCredit() decimal.Decimal {
	return c.Limit.Sub(c.Debt)
}

// IsExpired checks the card expiry against now
func (c *CreditCard) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// CanConsume checks whether the amount fits in the available credit
func (c *CreditCard) CanConsume(amount decimal.Decimal) bool {
	return c.Active && amount.GreaterThan(decimal.Zero) && amount.LessThanOrEqual(c.AvailableCredit())
}

// Consume increases the debt, enforcing the limit ceiling
func (c *CreditCard) Consume(amount decimal.Decimal) error {
	if !c.Active {
		return ErrCardNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("consumption amount must be positive")
	}

	if amount.GreaterThan(c.AvailableCredit()) {
		return ErrExceedsAvailable
	}

	c.Debt = c.Debt.Add(amount)
	return nil
}

// Repay reduces the debt by min(requested, debt) and returns the amount
// actually applied. The caller debits the paying account by exactly that
// amount, never by the requested one.
func (c *CreditCard) Repay(requested decimal.Decimal) (decimal.Decimal, error) {
	if !c.Active {
		return decimal.Zero, ErrCardNotActive
	}

	if requested.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("payment amount must be positive")
	}

	if c.Debt.IsZero() {
		return decimal.Zero, ErrNoOutstandingDebt
	}

	actual := decimal.Min(requested, c.Debt)
	c.Debt = c.Debt.Sub(actual)
	return actual, nil
}

// ChangeLimit raises or lowers the credit limit, never below current debt
func (c *CreditCard) ChangeLimit(newLimit decimal.Decimal) error {
	if newLimit.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidCreditLimit
	}
	if newLimit.LessThan(c.Debt) {
		return ErrLimitBelowDebt
	}
	c.Limit = newLimit
	return nil
}

// Cancel deactivates the card; refused while any debt remains
func (c *CreditCard) Cancel() error {
	if !c.Active {
		return ErrCardNotActive
	}
	if c.Debt.GreaterThan(decimal.Zero) {
		return ErrCardOutstandingDebt
	}
	c.Active = false
	return nil
}

// MaskedNumber returns the card number with all but the last four digits hidden
func (c *CreditCard) MaskedNumber() string {
	if len(c.Number) != CardNumberLength {
		return c.Number
	}
	return "**** **** **** " + c.Number[12:]
}

// TableName returns the table name for CreditCard
func (c *CreditCard) TableName() string {
	return "credit_cards"
}

// GenerateCardNumber generates a random 16-digit card number.
// Uniqueness is enforced by the repository layer.
func GenerateCardNumber() string {
	digits := make([]byte, CardNumberLength)
	digits[0] = byte('1' + rand.Intn(9))
	for i := 1; i < CardNumberLength; i++ {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

// ValidateCardNumber validates a 16-digit card number format
func ValidateCardNumber(number string) bool {
	if len(number) != CardNumberLength {
		return false
	}
	for _, char := range number {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
