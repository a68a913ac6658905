package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Requests for account, card, and loan lifecycle operations.

// OpenPrincipalRequest onboards a new owner with their principal account
type OpenPrincipalRequest struct {
	FirstName      string          `json:"first_name" validate:"required,max=100"`
	LastName       string          `json:"last_name" validate:"required,max=100"`
	Email          string          `json:"email" validate:"required,email"`
	InitialBalance decimal.Decimal `json:"initial_balance" validate:"gte=0"`
}

// OpenSecondaryRequest opens an additional savings account for an owner
type OpenSecondaryRequest struct {
	OwnerID        uuid.UUID       `json:"owner_id" validate:"required"`
	InitialBalance decimal.Decimal `json:"initial_balance" validate:"gte=0"`
}

// IssueCardRequest issues a credit card with a fresh verification code
type IssueCardRequest struct {
	OwnerID          uuid.UUID       `json:"owner_id" validate:"required"`
	Limit            decimal.Decimal `json:"limit" validate:"required,gt=0"`
	VerificationCode string          `json:"verification_code" validate:"required,verification_code"`
}

// ChangeLimitRequest raises or lowers a card's credit limit
type ChangeLimitRequest struct {
	CardNumber string          `json:"card_number" validate:"required,card_number"`
	NewLimit   decimal.Decimal `json:"new_limit" validate:"required,gt=0"`
}

// OriginateLoanRequest opens an installment loan and disburses its principal
type OriginateLoanRequest struct {
	OwnerID      uuid.UUID       `json:"owner_id" validate:"required"`
	OriginatorID uuid.UUID       `json:"originator_id" validate:"required"`
	Principal    decimal.Decimal `json:"principal" validate:"required,gt=0"`
	AnnualRate   decimal.Decimal `json:"annual_rate" validate:"gte=0,lte=100"`
	TermMonths   int             `json:"term_months" validate:"required,gte=1,lte=480"`
}

// ReviseRateRequest re-prices a loan's unpaid installments at a new rate
type ReviseRateRequest struct {
	LoanNumber string          `json:"loan_number" validate:"required,account_number"`
	NewRate    decimal.Decimal `json:"new_rate" validate:"gte=0,lte=100"`
}
