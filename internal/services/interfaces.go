package services

import (
	"context"
	"time"

	"bancore/internal/dto"
	"bancore/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerServiceInterface owns savings-account lifecycle and journal reads
type LedgerServiceInterface interface {
	OpenPrincipal(req *dto.OpenPrincipalRequest) (*models.Owner, *models.Account, error)
	OpenSecondary(req *dto.OpenSecondaryRequest) (*models.Account, error)
	Close(accountNumber string) (decimal.Decimal, error)
	GetAccountByNumber(number string) (*models.Account, error)
	GetStatement(accountID uuid.UUID, from, to time.Time) ([]models.LedgerEntry, error)
	GetRecentEntries(accountID uuid.UUID, limit int) ([]models.LedgerEntry, error)
}

// CardServiceInterface owns the credit-card facility lifecycle
type CardServiceInterface interface {
	IssueCard(req *dto.IssueCardRequest) (*models.CreditCard, error)
	CancelCard(cardNumber string) error
	ChangeLimit(req *dto.ChangeLimitRequest) (*models.CreditCard, error)
	GetCardByNumber(number string) (*models.CreditCard, error)
	GetCharges(cardID uuid.UUID, offset, limit int) ([]models.CardCharge, int64, error)
}

// LoanServiceInterface owns loan origination, re-pricing, and the overdue sweep
type LoanServiceInterface interface {
	Originate(req *dto.OriginateLoanRequest) (*models.Loan, error)
	ReviseRate(req *dto.ReviseRateRequest) (*models.Loan, error)
	SweepOverdue(asOf time.Time) (int64, error)
	RiskCheck(ownerID uuid.UUID, proposedPrincipal decimal.Decimal) (bool, error)
	GetLoanByNumber(number string) (*models.Loan, error)
	GetSchedule(loanID uuid.UUID) ([]models.Installment, error)
}

// SettlementServiceInterface exposes the nine public money-movement
// operations. Each returns a structured outcome; expected business failures
// are typed failure payloads, never raw errors.
type SettlementServiceInterface interface {
	Deposit(ctx context.Context, req *dto.DepositRequest) *dto.Outcome
	Withdraw(ctx context.Context, req *dto.WithdrawRequest) *dto.Outcome
	TransferBetweenOwnAccounts(ctx context.Context, req *dto.OwnTransferRequest) *dto.Outcome
	TransferToThirdParty(ctx context.Context, req *dto.ThirdPartyTransferRequest) *dto.Outcome
	PayCard(ctx context.Context, req *dto.PayCardRequest) *dto.Outcome
	PayLoan(ctx context.Context, req *dto.PayLoanRequest) *dto.Outcome
	PayBeneficiary(ctx context.Context, req *dto.PayBeneficiaryRequest) *dto.Outcome
	CashAdvance(ctx context.Context, req *dto.CashAdvanceRequest) *dto.Outcome
	CaptureMerchantCharge(ctx context.Context, req *dto.MerchantChargeRequest) *dto.Outcome
}

// SampleDataGeneratorInterface seeds development environments with realistic
// owners, accounts, cards, loans, and settlement activity
type SampleDataGeneratorInterface interface {
	Generate(ctx context.Context, ownerCount int) error
}

// Notification is the fire-and-forget payload handed to the sender: a
// recipient address, a template kind, and the masked identifiers the
// template needs.
type Notification struct {
	Recipient  string
	Kind       string
	Amount     decimal.Decimal
	Reference  string
	OccurredAt time.Time
}

// NotificationSenderInterface is the external delivery channel. Failure is
// reported to the caller for breaker accounting but never propagated further.
type NotificationSenderInterface interface {
	Send(ctx context.Context, n Notification) error
}

// NotifierInterface dispatches settlement notifications after commit.
// Implementations must never block or fail the settlement that triggered them.
type NotifierInterface interface {
	Notify(ctx context.Context, n Notification)
}

// VerifierInterface is the one-way hash primitive for card verification codes
type VerifierInterface interface {
	Hash(code string) (string, error)
	Verify(code, hash string) bool
}

// AuditRecorderInterface persists the best-effort settlement audit trail.
// Recording happens after commit and never fails the operation.
type AuditRecorderInterface interface {
	Record(ctx context.Context, ownerID *uuid.UUID, action, resource, resourceID string, metadata models.JSONBMap)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
