package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Requests for the nine settlement operations. Amounts are validated as
// positive before any entity is loaded; number formats are checked by the
// custom account_number / card_number / verification_code rules.

// DepositRequest captures an external cash deposit into a savings account
type DepositRequest struct {
	AccountNumber string          `json:"account_number" validate:"required,account_number"`
	Amount        decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Description   string          `json:"description" validate:"max=100"`
}

// WithdrawRequest captures an external cash withdrawal from a savings account
type WithdrawRequest struct {
	AccountNumber string          `json:"account_number" validate:"required,account_number"`
	Amount        decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Description   string          `json:"description" validate:"max=100"`
}

// OwnTransferRequest moves money between two accounts of the same owner
type OwnTransferRequest struct {
	FromNumber string          `json:"from_number" validate:"required,account_number"`
	ToNumber   string          `json:"to_number" validate:"required,account_number"`
	Amount     decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// ThirdPartyTransferRequest moves money to an account held by another owner
type ThirdPartyTransferRequest struct {
	FromNumber string          `json:"from_number" validate:"required,account_number"`
	ToNumber   string          `json:"to_number" validate:"required,account_number"`
	Amount     decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// PayBeneficiaryRequest pays a saved beneficiary addressed by account number.
// The supplied display name becomes the journal label on both legs.
type PayBeneficiaryRequest struct {
	FromNumber        string          `json:"from_number" validate:"required,account_number"`
	BeneficiaryName   string          `json:"beneficiary_name" validate:"required,max=100"`
	BeneficiaryNumber string          `json:"beneficiary_number" validate:"required,account_number"`
	Amount            decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// PayCardRequest pays down credit card debt from a savings account. The
// account is debited by min(amount, debt), never by the requested amount.
type PayCardRequest struct {
	CardNumber    string          `json:"card_number" validate:"required,card_number"`
	AccountNumber string          `json:"account_number" validate:"required,account_number"`
	Amount        decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// PayLoanRequest settles loan installments from a savings account
type PayLoanRequest struct {
	LoanNumber    string          `json:"loan_number" validate:"required,account_number"`
	AccountNumber string          `json:"account_number" validate:"required,account_number"`
	Amount        decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// CashAdvanceRequest draws cash against a card's available credit. The
// cardholder must present the verification code.
type CashAdvanceRequest struct {
	CardNumber       string          `json:"card_number" validate:"required,card_number"`
	AccountNumber    string          `json:"account_number" validate:"required,account_number"`
	Amount           decimal.Decimal `json:"amount" validate:"required,gt=0"`
	VerificationCode string          `json:"verification_code" validate:"required,verification_code"`
}

// MerchantChargeRequest captures a merchant consumption against a card
type MerchantChargeRequest struct {
	CardNumber       string          `json:"card_number" validate:"required,card_number"`
	Amount           decimal.Decimal `json:"amount" validate:"required,gt=0"`
	MerchantName     string          `json:"merchant_name" validate:"required,max=100"`
	MerchantID       *uuid.UUID      `json:"merchant_id,omitempty"`
	VerificationCode string          `json:"verification_code" validate:"required,verification_code"`
}

// Receipts returned as outcome payloads.

// EntryReceipt describes a single-entry capture (deposit, withdrawal)
type EntryReceipt struct {
	EntryID       uuid.UUID       `json:"entry_id"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
}

// TransferReceipt describes the two journal legs of an internal transfer
type TransferReceipt struct {
	DebitEntryID  uuid.UUID       `json:"debit_entry_id"`
	CreditEntryID uuid.UUID       `json:"credit_entry_id"`
	FromNumber    string          `json:"from_number"`
	ToNumber      string          `json:"to_number"`
	Amount        decimal.Decimal `json:"amount"`
}

// CardPaymentReceipt reports the amount actually applied to card debt
type CardPaymentReceipt struct {
	EntryID       uuid.UUID       `json:"entry_id"`
	CardNumber    string          `json:"card_number"`
	Requested     decimal.Decimal `json:"requested"`
	AmountApplied decimal.Decimal `json:"amount_applied"`
	RemainingDebt decimal.Decimal `json:"remaining_debt"`
}

// LoanPaymentReceipt reports the sequential installment allocation result
type LoanPaymentReceipt struct {
	EntryID          uuid.UUID       `json:"entry_id"`
	LoanNumber       string          `json:"loan_number"`
	InstallmentsPaid int             `json:"installments_paid"`
	AmountApplied    decimal.Decimal `json:"amount_applied"`
	AmountReturned   decimal.Decimal `json:"amount_returned"`
	Settled          bool            `json:"settled"`
}

// CashAdvanceReceipt reports the advance principal, the interest charged on
// it, and the gross added to the card's debt
type CashAdvanceReceipt struct {
	EntryID    uuid.UUID       `json:"entry_id"`
	CardNumber string          `json:"card_number"`
	Amount     decimal.Decimal `json:"amount"`
	Interest   decimal.Decimal `json:"interest"`
	DebtAdded  decimal.Decimal `json:"debt_added"`
}

// ChargeReceipt reports a recorded merchant charge
type ChargeReceipt struct {
	ChargeID     uuid.UUID       `json:"charge_id"`
	CardNumber   string          `json:"card_number"`
	Amount       decimal.Decimal `json:"amount"`
	MerchantName string          `json:"merchant_name"`
	Status       string          `json:"status"`
}
