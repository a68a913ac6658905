package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Validate(t *testing.T) {
	validOwnerID := uuid.New()

	tests := []struct {
		name    string
		account Account
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid account",
			account: Account{
				OwnerID: validOwnerID,
				Number:  "123456789",
				Balance: decimal.NewFromFloat(1000.50),
				Active:  true,
			},
			wantErr: false,
		},
		{
			name: "valid principal account with zero balance",
			account: Account{
				OwnerID:   validOwnerID,
				Number:    "987654321",
				Balance:   decimal.Zero,
				Principal: true,
				Active:    true,
			},
			wantErr: false,
		},
		{
			name: "missing owner ID",
			account: Account{
				Number:  "123456789",
				Balance: decimal.NewFromFloat(100.00),
			},
			wantErr: true,
			errMsg:  "owner ID is required",
		},
		{
			name: "number too short",
			account: Account{
				OwnerID: validOwnerID,
				Number:  "12345",
				Balance: decimal.NewFromFloat(100.00),
			},
			wantErr: true,
			errMsg:  "account number must be 9 digits",
		},
		{
			name: "number with letters",
			account: Account{
				OwnerID: validOwnerID,
				Number:  "12345678a",
				Balance: decimal.NewFromFloat(100.00),
			},
			wantErr: true,
			errMsg:  "account number must be 9 digits",
		},
		{
			name: "negative balance",
			account: Account{
				OwnerID: validOwnerID,
				Number:  "123456789",
				Balance: decimal.NewFromFloat(-0.01),
			},
			wantErr: true,
			errMsg:  "balance cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccount_Debit(t *testing.T) {
	account := Account{
		OwnerID: uuid.New(),
		Number:  "123456789",
		Balance: decimal.NewFromFloat(100.00),
		Active:  true,
	}

	err := account.Debit(decimal.NewFromFloat(40.00))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(60.00).Equal(account.Balance))

	err = account.Debit(decimal.NewFromFloat(60.01))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, decimal.NewFromFloat(60.00).Equal(account.Balance))

	// Draining the account exactly to zero is allowed
	err = account.Debit(decimal.NewFromFloat(60.00))
	require.NoError(t, err)
	assert.True(t, account.Balance.IsZero())
}

func TestAccount_Debit_InvalidAmounts(t *testing.T) {
	account := Account{Balance: decimal.NewFromFloat(100.00), Active: true}

	assert.Error(t, account.Debit(decimal.Zero))
	assert.Error(t, account.Debit(decimal.NewFromFloat(-5)))
}

func TestAccount_Debit_InactiveAccount(t *testing.T) {
	account := Account{Balance: decimal.NewFromFloat(100.00), Active: false}

	err := account.Debit(decimal.NewFromFloat(10.00))
	assert.ErrorIs(t, err, ErrAccountNotActive)
}

func TestAccount_Credit(t *testing.T) {
	account := Account{Balance: decimal.NewFromFloat(100.00), Active: true}

	require.NoError(t, account.Credit(decimal.NewFromFloat(25.50)))
	assert.True(t, decimal.NewFromFloat(125.50).Equal(account.Balance))

	assert.Error(t, account.Credit(decimal.Zero))
	assert.ErrorIs(t, (&Account{Active: false}).Credit(decimal.NewFromInt(1)), ErrAccountNotActive)
}

func TestAccount_CanWithdraw(t *testing.T) {
	account := Account{Balance: decimal.NewFromFloat(100.00), Active: true}

	assert.True(t, account.CanWithdraw(decimal.NewFromFloat(100.00)))
	assert.True(t, account.CanWithdraw(decimal.NewFromFloat(0.01)))
	assert.False(t, account.CanWithdraw(decimal.NewFromFloat(100.01)))
	assert.False(t, account.CanWithdraw(decimal.Zero))

	account.Active = false
	assert.False(t, account.CanWithdraw(decimal.NewFromFloat(10.00)))
}

func TestAccount_Deactivate(t *testing.T) {
	secondary := Account{Active: true}
	require.NoError(t, secondary.Deactivate())
	assert.False(t, secondary.Active)
	assert.Error(t, secondary.Deactivate())

	principal := Account{Principal: true, Active: true}
	assert.ErrorIs(t, principal.Deactivate(), ErrAccountPrincipal)
	assert.True(t, principal.Active)
}

func TestGenerateAccountNumber(t *testing.T) {
	for i := 0; i < 100; i++ {
		number := GenerateAccountNumber()
		assert.True(t, ValidateAccountNumber(number), "generated %q", number)
	}
}

func TestValidateAccountNumber(t *testing.T) {
	assert.True(t, ValidateAccountNumber("123456789"))
	assert.False(t, ValidateAccountNumber(""))
	assert.False(t, ValidateAccountNumber("12345678"))
	assert.False(t, ValidateAccountNumber("1234567890"))
	assert.False(t, ValidateAccountNumber("12345678x"))
}
