package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Installment is one period of a loan's repayment schedule. The overdue flag
// is derived by the periodic sweep comparing due dates to the current date;
// "mark overdue" and "mark paid" are mutually exclusive on one installment.
type Installment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LoanID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"loan_id"`
	Sequence  int             `gorm:"not null" json:"sequence"`
	DueDate   time.Time       `gorm:"not null;index" json:"due_date"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Paid      bool            `gorm:"not null;default:false" json:"paid"`
	Overdue   bool            `gorm:"not null;default:false" json:"overdue"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Loan Loan `gorm:"foreignKey:LoanID" json:"-"`
}

// BeforeCreate hook for Installment
func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

// BeforeUpdate hook for Installment
func (i *Installment) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return i.Validate()
}

// Validate validates the installment fields
func (i *Installment) Validate() error {
	if i.LoanID == uuid.Nil {
		return errors.New("loan ID is required")
	}

	if i.Sequence < 1 {
		return errors.New("installment sequence must start at 1")
	}

	if i.DueDate.IsZero() {
		return errors.New("due date is required")
	}

	if i.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("installment amount must be positive")
	}

	if i.Paid && i.Overdue {
		return errors.New("a paid installment cannot be overdue")
	}

	return nil
}

// MarkPaid settles the installment and clears the overdue flag
func (i *Installment) MarkPaid() {
	i.Paid = true
	i.Overdue = false
	now := time.Now()
	i.PaidAt = &now
}

// IsDue reports whether an unpaid installment's due date has passed
func (i *Installment) IsDue(asOf time.Time) bool {
	return !i.Paid && i.DueDate.Before(asOf)
}

// TableName returns the table name for Installment
func (i *Installment) TableName() string {
	return "installments"
}
