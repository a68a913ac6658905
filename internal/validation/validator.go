package validation

import (
	"reflect"
	"regexp"
	"strings"

	"bancore/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// Expose decimal.Decimal fields to the numeric comparison rules (gt, gte)
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("card_number", validateCardNumber)
	_ = v.RegisterValidation("verification_code", validateVerificationCode)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a request struct and returns a map of field names
// to messages, keyed by json tag. An empty map means the struct is valid.
func (v *Validator) ValidateStruct(s interface{}) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = messageForTag(fe)
	}

	return fieldErrors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "max":
		return "must not exceed " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "account_number":
		return "must be a 9-digit number"
	case "card_number":
		return "must be a 16-digit card number"
	case "verification_code":
		return "must be a 4-digit code"
	default:
		return "is invalid"
	}
}

func decimalToFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// Custom validation functions

// validateAccountNumber validates the 9-digit format shared by account and
// loan numbers
func validateAccountNumber(fl validator.FieldLevel) bool {
	return models.ValidateAccountNumber(fl.Field().String())
}

// validateCardNumber validates the 16-digit credit card number format
func validateCardNumber(fl validator.FieldLevel) bool {
	return models.ValidateCardNumber(fl.Field().String())
}

// validateVerificationCode validates the 4-digit card verification code format
func validateVerificationCode(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^\d{4}$`, fl.Field().String())
	return matched
}
