package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentRequest struct {
	AccountNumber    string          `json:"account_number" validate:"required,account_number"`
	CardNumber       string          `json:"card_number" validate:"required,card_number"`
	Amount           decimal.Decimal `json:"amount" validate:"required,gt=0"`
	VerificationCode string          `json:"verification_code" validate:"required,verification_code"`
}

func validRequest() paymentRequest {
	return paymentRequest{
		AccountNumber:    "123456789",
		CardNumber:       "4111222233334444",
		Amount:           decimal.NewFromFloat(100.50),
		VerificationCode: "1234",
	}
}

func TestValidator_ValidStruct(t *testing.T) {
	v := NewValidator()

	fieldErrors := v.ValidateStruct(validRequest())
	assert.Empty(t, fieldErrors)
}

func TestValidator_AccountNumberRule(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	req.AccountNumber = "12345"
	fieldErrors := v.ValidateStruct(req)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "must be a 9-digit number", fieldErrors["account_number"])
}

func TestValidator_CardNumberRule(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	req.CardNumber = "4111-2222-3333-4444"
	fieldErrors := v.ValidateStruct(req)
	assert.Equal(t, "must be a 16-digit card number", fieldErrors["card_number"])
}

func TestValidator_VerificationCodeRule(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	req.VerificationCode = "12a4"
	fieldErrors := v.ValidateStruct(req)
	assert.Equal(t, "must be a 4-digit code", fieldErrors["verification_code"])
}

func TestValidator_DecimalAmountRules(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	req.Amount = decimal.Zero
	fieldErrors := v.ValidateStruct(req)
	assert.Contains(t, fieldErrors, "amount")

	req.Amount = decimal.NewFromFloat(-10)
	fieldErrors = v.ValidateStruct(req)
	assert.Contains(t, fieldErrors, "amount")
}

func TestValidator_FieldNamesUseJSONTags(t *testing.T) {
	v := NewValidator()

	fieldErrors := v.ValidateStruct(paymentRequest{})
	assert.Contains(t, fieldErrors, "account_number")
	assert.Contains(t, fieldErrors, "card_number")
	assert.Contains(t, fieldErrors, "amount")
	assert.NotContains(t, fieldErrors, "AccountNumber")
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
