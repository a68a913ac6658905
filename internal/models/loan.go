package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrLoanNotActive        = errors.New("loan is not active")
	ErrNoUnpaidInstallments = errors.New("loan has no unpaid installments")
	ErrInvalidLoanPrincipal = errors.New("loan principal must be positive")
	ErrInvalidLoanTerm      = errors.New("loan term must be at least one month")
)

// Loan is a fixed-payment installment loan. A loan is active exactly while
// it has at least one unpaid installment.
type Loan struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Number         string          `gorm:"type:varchar(9);uniqueIndex;not null" json:"number"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	OriginatorID   uuid.UUID       `gorm:"type:uuid;not null" json:"originator_id"`
	Principal      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"principal"`
	AnnualRate     decimal.Decimal `gorm:"type:decimal(6,3);not null" json:"annual_rate"`
	TermMonths     int             `gorm:"not null" json:"term_months"`
	MonthlyPayment decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_payment"`
	Active         bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Owner        Owner         `gorm:"foreignKey:OwnerID" json:"-"`
	Installments []Installment `gorm:"foreignKey:LoanID" json:"-"`
}

// BeforeCreate hook for Loan
func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = now
	}

	return l.Validate()
}

// BeforeUpdate hook for Loan
func (l *Loan) BeforeUpdate(tx *gorm.DB) error {
	l.UpdatedAt = time.Now()
	return l.Validate()
}

// Validate validates the loan fields
func (l *Loan) Validate() error {
	if l.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if !ValidateAccountNumber(l.Number) {
		return fmt.Errorf("loan number must be %d digits", AccountNumberLength)
	}

	if l.Principal.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidLoanPrincipal
	}

	if l.AnnualRate.LessThan(decimal.Zero) {
		return errors.New("annual rate cannot be negative")
	}

	if l.TermMonths < 1 {
		return ErrInvalidLoanTerm
	}

	if l.MonthlyPayment.LessThanOrEqual(decimal.Zero) {
		return errors.New("monthly payment must be positive")
	}

	return nil
}

// PaymentAllocation summarizes one sequential payment pass over a loan's
// unpaid installments.
type PaymentAllocation struct {
	InstallmentsPaid int
	AmountApplied    decimal.Decimal
	AmountReturned   decimal.Decimal
	Settled          bool
}

// AllocatePayment walks the unpaid installments in sequence order and marks
// every installment the remaining amount fully covers as paid, clearing its
// overdue flag. Partial installment payments are not permitted: the first
// shortfall stops the pass and the remainder is reported back unapplied.
// The installments slice is mutated in place; Settled reports whether no
// unpaid installment remains afterwards.
func (l *Loan) AllocatePayment(unpaid []Installment, amount decimal.Decimal) (PaymentAllocation, error) {
	alloc := PaymentAllocation{
		AmountApplied:  decimal.Zero,
		AmountReturned: amount,
	}

	if !l.Active {
		return alloc, ErrLoanNotActive
	}

	if len(unpaid) == 0 {
		return alloc, ErrNoUnpaidInstallments
	}

	remaining := amount
	for i := range unpaid {
		if remaining.LessThan(unpaid[i].Amount) {
			break
		}
		remaining = remaining.Sub(unpaid[i].Amount)
		alloc.AmountApplied = alloc.AmountApplied.Add(unpaid[i].Amount)
		unpaid[i].MarkPaid()
		alloc.InstallmentsPaid++
	}

	alloc.AmountReturned = remaining
	alloc.Settled = alloc.InstallmentsPaid == len(unpaid)
	if alloc.Settled {
		l.Active = false
	}

	return alloc, nil
}

// TableName returns the table name for Loan
func (l *Loan) TableName() string {
	return "loans"
}

// GenerateLoanNumber generates a random 9-digit loan number from the
// namespace shared with account numbers.
func GenerateLoanNumber() string {
	return GenerateAccountNumber()
}
