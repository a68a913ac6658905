package repositories

import (
	"time"

	"bancore/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerRepositoryInterface defines the contract for owner repository operations
type OwnerRepositoryInterface interface {
	Create(owner *models.Owner) error
	GetByID(id uuid.UUID) (*models.Owner, error)
	GetByEmail(email string) (*models.Owner, error)
	Update(owner *models.Owner) error
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByNumber(number string) (*models.Account, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.Account, error)
	GetPrincipalByOwnerID(ownerID uuid.UUID) (*models.Account, error)
	Update(account *models.Account) error
	GenerateUniqueNumber() (string, error)
	ApplyEntry(accountID uuid.UUID, amount decimal.Decimal, direction, origin, beneficiary string) (uuid.UUID, error)
	ExecuteAtomicTransfer(fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, origin, fromBeneficiary, toBeneficiary string) (debitEntryID, creditEntryID uuid.UUID, err error)
	ExecuteClose(accountID uuid.UUID) (swept decimal.Decimal, err error)
}

// LedgerRepositoryInterface defines the contract for journal entry lookups.
// Entries are written inside the account repository's atomic operations;
// this interface is read-only by design.
type LedgerRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.LedgerEntry, error)
	GetByReference(reference string) (*models.LedgerEntry, error)
	GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error)
	GetByDateRange(accountID uuid.UUID, startDate, endDate time.Time) ([]models.LedgerEntry, error)
	GetRecentByAccountID(accountID uuid.UUID, limit int) ([]models.LedgerEntry, error)
}

// CardRepositoryInterface defines the contract for credit card repository operations
type CardRepositoryInterface interface {
	Create(card *models.CreditCard) error
	GetByID(id uuid.UUID) (*models.CreditCard, error)
	GetByNumber(number string) (*models.CreditCard, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.CreditCard, error)
	Update(card *models.CreditCard) error
	GenerateUniqueNumber() (string, error)
	GetTotalDebtByOwnerID(ownerID uuid.UUID) (decimal.Decimal, error)
	ExecuteAuthorization(cardID uuid.UUID, amount decimal.Decimal, merchantName string, merchantID *uuid.UUID, now time.Time) (*models.CardCharge, error)
	ExecuteCardPayment(cardID, accountID uuid.UUID, requested decimal.Decimal) (applied decimal.Decimal, entryID uuid.UUID, err error)
	ExecuteCashAdvance(cardID, accountID uuid.UUID, amount, interest decimal.Decimal) (entryID uuid.UUID, err error)
}

// ChargeRepositoryInterface defines the contract for card charge lookups.
// Charges are recorded inside ExecuteAuthorization; this interface is
// read-only by design.
type ChargeRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.CardCharge, error)
	GetByCardID(cardID uuid.UUID, offset, limit int) ([]models.CardCharge, int64, error)
}

// LoanRepositoryInterface defines the contract for loan repository operations
type LoanRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Loan, error)
	GetByNumber(number string) (*models.Loan, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.Loan, error)
	HasActiveLoan(ownerID uuid.UUID) (bool, error)
	GenerateUniqueNumber() (string, error)
	GetInstallments(loanID uuid.UUID) ([]models.Installment, error)
	GetUnpaidInstallments(loanID uuid.UUID) ([]models.Installment, error)
	GetUnpaidTotalByOwnerID(ownerID uuid.UUID) (decimal.Decimal, error)
	GetSystemDebtAggregates() (total decimal.Decimal, debtors int64, err error)
	ExecuteOrigination(loan *models.Loan, installments []models.Installment, disburseAccountID uuid.UUID) (uuid.UUID, error)
	ExecuteLoanPayment(loanID, accountID uuid.UUID, amount decimal.Decimal) (models.PaymentAllocation, uuid.UUID, error)
	ExecuteRateRevision(loanID uuid.UUID, newRate, newPayment decimal.Decimal) (int64, error)
	MarkOverdueInstallments(asOf time.Time) (int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.AuditLog, error)
	GetByOwnerID(ownerID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
