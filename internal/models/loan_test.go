package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLoan() Loan {
	return Loan{
		OwnerID:        uuid.New(),
		OriginatorID:   uuid.New(),
		Number:         "555666777",
		Principal:      decimal.NewFromInt(10000),
		AnnualRate:     decimal.NewFromInt(6),
		TermMonths:     24,
		MonthlyPayment: decimal.RequireFromString("443.21"),
		Active:         true,
	}
}

func unpaidInstallments(loanID uuid.UUID, amounts ...string) []Installment {
	installments := make([]Installment, 0, len(amounts))
	for i, amount := range amounts {
		installments = append(installments, Installment{
			LoanID:   loanID,
			Sequence: i + 1,
			DueDate:  time.Now().AddDate(0, i+1, 0),
			Amount:   decimal.RequireFromString(amount),
		})
	}
	return installments
}

func TestLoan_Validate(t *testing.T) {
	loan := validLoan()
	assert.NoError(t, loan.Validate())

	loan = validLoan()
	loan.Principal = decimal.Zero
	assert.ErrorIs(t, loan.Validate(), ErrInvalidLoanPrincipal)

	loan = validLoan()
	loan.TermMonths = 0
	assert.ErrorIs(t, loan.Validate(), ErrInvalidLoanTerm)

	loan = validLoan()
	loan.Number = "12345"
	assert.Error(t, loan.Validate())
}

func TestLoan_AllocatePayment_WholeInstallmentsOnly(t *testing.T) {
	loan := validLoan()
	unpaid := unpaidInstallments(uuid.New(), "443.21", "443.21", "443.21")

	// 1000 covers exactly two installments, the 113.58 shortfall stays unapplied
	alloc, err := loan.AllocatePayment(unpaid, decimal.NewFromInt(1000))
	require.NoError(t, err)

	assert.Equal(t, 2, alloc.InstallmentsPaid)
	assert.True(t, decimal.RequireFromString("886.42").Equal(alloc.AmountApplied))
	assert.True(t, decimal.RequireFromString("113.58").Equal(alloc.AmountReturned))
	assert.False(t, alloc.Settled)
	assert.True(t, loan.Active)

	assert.True(t, unpaid[0].Paid)
	assert.True(t, unpaid[1].Paid)
	assert.False(t, unpaid[2].Paid)
	assert.NotNil(t, unpaid[0].PaidAt)
}

func TestLoan_AllocatePayment_ShortfallPaysNothing(t *testing.T) {
	loan := validLoan()
	unpaid := unpaidInstallments(uuid.New(), "443.21", "443.21")

	alloc, err := loan.AllocatePayment(unpaid, decimal.RequireFromString("443.20"))
	require.NoError(t, err)

	assert.Equal(t, 0, alloc.InstallmentsPaid)
	assert.True(t, alloc.AmountApplied.IsZero())
	assert.True(t, decimal.RequireFromString("443.20").Equal(alloc.AmountReturned))
	assert.False(t, unpaid[0].Paid)
}

func TestLoan_AllocatePayment_SettlesLoan(t *testing.T) {
	loan := validLoan()
	unpaid := unpaidInstallments(uuid.New(), "443.21")

	alloc, err := loan.AllocatePayment(unpaid, decimal.RequireFromString("443.21"))
	require.NoError(t, err)

	assert.Equal(t, 1, alloc.InstallmentsPaid)
	assert.True(t, alloc.AmountReturned.IsZero())
	assert.True(t, alloc.Settled)
	assert.False(t, loan.Active)
}

func TestLoan_AllocatePayment_ClearsOverdueFlag(t *testing.T) {
	loan := validLoan()
	unpaid := unpaidInstallments(uuid.New(), "443.21")
	unpaid[0].Overdue = true

	_, err := loan.AllocatePayment(unpaid, decimal.RequireFromString("443.21"))
	require.NoError(t, err)

	assert.True(t, unpaid[0].Paid)
	assert.False(t, unpaid[0].Overdue)
}

func TestLoan_AllocatePayment_NoUnpaidInstallments(t *testing.T) {
	loan := validLoan()

	_, err := loan.AllocatePayment(nil, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrNoUnpaidInstallments)
}

func TestLoan_AllocatePayment_InactiveLoan(t *testing.T) {
	loan := validLoan()
	loan.Active = false
	unpaid := unpaidInstallments(uuid.New(), "443.21")

	_, err := loan.AllocatePayment(unpaid, decimal.NewFromInt(1000))
	assert.ErrorIs(t, err, ErrLoanNotActive)
}

func TestInstallment_Validate(t *testing.T) {
	installment := Installment{
		LoanID:   uuid.New(),
		Sequence: 1,
		DueDate:  time.Now().AddDate(0, 1, 0),
		Amount:   decimal.NewFromInt(100),
	}
	assert.NoError(t, installment.Validate())

	installment.Paid = true
	installment.Overdue = true
	assert.Error(t, installment.Validate())

	installment = Installment{LoanID: uuid.New(), Sequence: 0, DueDate: time.Now(), Amount: decimal.NewFromInt(1)}
	assert.Error(t, installment.Validate())
}

func TestInstallment_IsDue(t *testing.T) {
	installment := Installment{DueDate: time.Now().Add(-time.Hour)}
	assert.True(t, installment.IsDue(time.Now()))

	installment.Paid = true
	assert.False(t, installment.IsDue(time.Now()))

	future := Installment{DueDate: time.Now().Add(time.Hour)}
	assert.False(t, future.IsDue(time.Now()))
}
