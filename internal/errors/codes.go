package errors

// ErrorCode represents a standardized error code surfaced in settlement outcomes
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
)

// Owner error codes (OWNER_*)
const (
	OwnerNotFound ErrorCode = "OWNER_001"
	OwnerInactive ErrorCode = "OWNER_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound          ErrorCode = "ACCOUNT_001"
	AccountInactive          ErrorCode = "ACCOUNT_002"
	AccountInsufficientFunds ErrorCode = "ACCOUNT_003"
	AccountIsPrincipal       ErrorCode = "ACCOUNT_004"
	AccountSameAccount       ErrorCode = "ACCOUNT_005"
)

// Credit card error codes (CARD_*)
const (
	CardNotFound           ErrorCode = "CARD_001"
	CardInactive           ErrorCode = "CARD_002"
	CardInsufficientCredit ErrorCode = "CARD_003"
	CardNoOutstandingDebt  ErrorCode = "CARD_004"
	CardLimitBelowDebt     ErrorCode = "CARD_005"
	CardOutstandingDebt    ErrorCode = "CARD_006"
	CardVerificationFailed ErrorCode = "CARD_007"
	CardChargeRejected     ErrorCode = "CARD_008"
	CardExpired            ErrorCode = "CARD_009"
)

// Loan error codes (LOAN_*)
const (
	LoanNotFound            ErrorCode = "LOAN_001"
	LoanInactive            ErrorCode = "LOAN_002"
	LoanActiveExists        ErrorCode = "LOAN_003"
	LoanNoUnpaidInstallment ErrorCode = "LOAN_004"
	LoanHighRisk            ErrorCode = "LOAN_005"
)

// Settlement error codes (SETTLEMENT_*)
const (
	SettlementNotSameOwner         ErrorCode = "SETTLEMENT_001"
	SettlementSameOwner            ErrorCode = "SETTLEMENT_002"
	SettlementBelowNextInstallment ErrorCode = "SETTLEMENT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemCommitConflict     ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidAmount: "Amount must be a positive value",

	OwnerNotFound: "Client not found",
	OwnerInactive: "Client is inactive",

	AccountNotFound:          "Account not found",
	AccountInactive:          "Account is inactive",
	AccountInsufficientFunds: "Insufficient account balance",
	AccountIsPrincipal:       "Principal accounts cannot be closed",
	AccountSameAccount:       "Source and destination accounts must differ",

	CardNotFound:           "Credit card not found",
	CardInactive:           "Credit card is inactive",
	CardInsufficientCredit: "Amount exceeds available credit",
	CardNoOutstandingDebt:  "Credit card has no outstanding debt",
	CardLimitBelowDebt:     "New limit is below the current debt",
	CardOutstandingDebt:    "Credit card has outstanding debt",
	CardVerificationFailed: "Card verification code is incorrect",
	CardChargeRejected:     "Charge was rejected",
	CardExpired:            "Credit card has expired",

	LoanNotFound:            "Loan not found",
	LoanInactive:            "Loan is no longer active",
	LoanActiveExists:        "Client already holds an active loan",
	LoanNoUnpaidInstallment: "Loan has no unpaid installments",
	LoanHighRisk:            "Client exceeds the debt risk threshold",

	SettlementNotSameOwner:         "Accounts belong to different clients",
	SettlementSameOwner:            "Destination account belongs to the same client",
	SettlementBelowNextInstallment: "Payment does not cover the next installment",

	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "Database error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemCommitConflict:     "The operation could not be committed, please retry",
}

// GetErrorMessage returns the default message for a given error code.
// If the error code is not found, it returns a generic error message.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
