package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bancore/internal/amortization"
	"bancore/internal/dto"
	apperrors "bancore/internal/errors"
	"bancore/internal/models"
	"bancore/internal/repositories"
	"bancore/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrLoanNotFound     = errors.New("loan not found")
	ErrActiveLoanExists = errors.New("owner already holds an active loan")
	ErrHighRisk         = errors.New("owner exceeds the debt risk threshold")
)

// loanService implements LoanServiceInterface
type loanService struct {
	loanRepo    repositories.LoanRepositoryInterface
	cardRepo    repositories.CardRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	ownerRepo   repositories.OwnerRepositoryInterface
	auditRepo   repositories.AuditLogRepositoryInterface
	validator   *validation.Validator
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewLoanService creates the installment loan service
func NewLoanService(
	loanRepo repositories.LoanRepositoryInterface,
	cardRepo repositories.CardRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	ownerRepo repositories.OwnerRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LoanServiceInterface {
	return &loanService{
		loanRepo:    loanRepo,
		cardRepo:    cardRepo,
		accountRepo: accountRepo,
		ownerRepo:   ownerRepo,
		auditRepo:   auditRepo,
		validator:   validation.GetValidator(),
		metrics:     metrics,
		logger:      logger,
	}
}

// Originate opens an installment loan: risk-checked, numbered from the
// shared 9-digit namespace, annuity schedule built by the calculator, and
// the principal disbursed to the owner's principal account in one atomic
// unit with the schedule insert.
func (s *loanService) Originate(req *dto.OriginateLoanRequest) (*models.Loan, error) {
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return nil, apperrors.NewValidationFailure(fieldErrors)
	}

	owner, err := s.ownerRepo.GetByID(req.OwnerID)
	if err != nil {
		if errors.Is(err, repositories.ErrOwnerNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}
	if !owner.Active {
		return nil, ErrOwnerInactive
	}

	hasActive, err := s.loanRepo.HasActiveLoan(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active loans: %w", err)
	}
	if hasActive {
		return nil, ErrActiveLoanExists
	}

	highRisk, err := s.RiskCheck(owner.ID, req.Principal)
	if err != nil {
		return nil, err
	}
	if highRisk {
		return nil, ErrHighRisk
	}

	principalAccount, err := s.accountRepo.GetPrincipalByOwnerID(owner.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNoPrincipalAccount) {
			return nil, ErrNoPrincipal
		}
		return nil, fmt.Errorf("failed to load principal account: %w", err)
	}

	number, err := s.loanRepo.GenerateUniqueNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to generate loan number: %w", err)
	}

	now := time.Now().UTC()
	payment := amortization.MonthlyPayment(req.Principal, req.AnnualRate, req.TermMonths)
	schedule := amortization.BuildSchedule(now, req.Principal, req.AnnualRate, req.TermMonths)

	loan := &models.Loan{
		Number:         number,
		OwnerID:        owner.ID,
		OriginatorID:   req.OriginatorID,
		Principal:      req.Principal,
		AnnualRate:     req.AnnualRate,
		TermMonths:     req.TermMonths,
		MonthlyPayment: payment,
		Active:         true,
	}

	installments := make([]models.Installment, 0, len(schedule))
	for _, scheduled := range schedule {
		installments = append(installments, models.Installment{
			Sequence: scheduled.Sequence,
			DueDate:  scheduled.DueDate,
			Amount:   scheduled.Amount,
		})
	}

	entryID, err := s.loanRepo.ExecuteOrigination(loan, installments, principalAccount.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to originate loan: %w", err)
	}

	s.metrics.IncrementCounter("loan.originated", nil)
	s.writeAudit(&owner.ID, models.AuditActionLoanOriginated, "loan", loan.ID.String(), models.JSONBMap{
		"number":    loan.Number,
		"principal": loan.Principal.String(),
		"term":      loan.TermMonths,
		"payment":   loan.MonthlyPayment.String(),
		"entry_id":  entryID.String(),
	})

	return loan, nil
}

// ReviseRate re-prices every unpaid installment at a new rate. The new
// uniform payment spreads the unpaid face-value sum over the remaining
// count; paid installments are never touched.
func (s *loanService) ReviseRate(req *dto.ReviseRateRequest) (*models.Loan, error) {
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return nil, apperrors.NewValidationFailure(fieldErrors)
	}

	loan, err := s.GetLoanByNumber(req.LoanNumber)
	if err != nil {
		return nil, err
	}
	if !loan.Active {
		return nil, models.ErrLoanNotActive
	}

	unpaid, err := s.loanRepo.GetUnpaidInstallments(loan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unpaid installments: %w", err)
	}
	if len(unpaid) == 0 {
		return nil, models.ErrNoUnpaidInstallments
	}

	remainingNominal := decimal.Zero
	for _, installment := range unpaid {
		remainingNominal = remainingNominal.Add(installment.Amount)
	}

	newPayment := amortization.RecomputePayment(remainingNominal, req.NewRate, len(unpaid))

	revised, err := s.loanRepo.ExecuteRateRevision(loan.ID, req.NewRate, newPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to revise rate: %w", err)
	}

	previousRate := loan.AnnualRate
	loan.AnnualRate = req.NewRate
	loan.MonthlyPayment = newPayment

	s.writeAudit(&loan.OwnerID, models.AuditActionLoanRateRevised, "loan", loan.ID.String(), models.JSONBMap{
		"number":      loan.Number,
		"old_rate":    previousRate.String(),
		"new_rate":    req.NewRate.String(),
		"new_payment": newPayment.String(),
		"revised":     revised,
	})

	return loan, nil
}

// SweepOverdue flags every unpaid installment past due as of the given time.
// The sweep is idempotent and driven by an external scheduled trigger.
func (s *loanService) SweepOverdue(asOf time.Time) (int64, error) {
	swept, err := s.loanRepo.MarkOverdueInstallments(asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep overdue installments: %w", err)
	}

	if swept > 0 {
		s.metrics.RecordGauge("overdue.swept", float64(swept), nil)
		s.writeAudit(nil, models.AuditActionOverdueSweep, "installment", "", models.JSONBMap{
			"swept": swept,
			"as_of": asOf.Format(time.RFC3339),
		})
	}

	s.logger.Info("overdue sweep completed",
		slog.Int64("swept", swept),
		slog.Time("as_of", asOf),
	)

	return swept, nil
}

// RiskCheck reports whether an owner is high-risk for a proposed principal:
// their outstanding debt (unpaid installments plus card debt) already
// exceeds the system-wide average debt per indebted owner, or would after
// the proposal. With no indebted owners there is no baseline and nobody is
// high-risk.
func (s *loanService) RiskCheck(ownerID uuid.UUID, proposedPrincipal decimal.Decimal) (bool, error) {
	systemDebt, debtors, err := s.loanRepo.GetSystemDebtAggregates()
	if err != nil {
		return false, fmt.Errorf("failed to aggregate system debt: %w", err)
	}
	if debtors == 0 {
		return false, nil
	}

	unpaidLoans, err := s.loanRepo.GetUnpaidTotalByOwnerID(ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to total unpaid installments: %w", err)
	}

	cardDebt, err := s.cardRepo.GetTotalDebtByOwnerID(ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to total card debt: %w", err)
	}

	ownerDebt := unpaidLoans.Add(cardDebt)
	average := systemDebt.Div(decimal.NewFromInt(debtors))

	return ownerDebt.GreaterThan(average) ||
		ownerDebt.Add(proposedPrincipal).GreaterThan(average), nil
}

// GetLoanByNumber resolves a loan by its 9-digit number
func (s *loanService) GetLoanByNumber(number string) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, repositories.ErrLoanNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to load loan: %w", err)
	}
	return loan, nil
}

// GetSchedule returns a loan's full installment schedule in sequence order
func (s *loanService) GetSchedule(loanID uuid.UUID) ([]models.Installment, error) {
	installments, err := s.loanRepo.GetInstallments(loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return installments, nil
}

func (s *loanService) writeAudit(ownerID *uuid.UUID, action, resource, resourceID string, metadata models.JSONBMap) {
	if err := s.auditRepo.Create(&models.AuditLog{
		OwnerID:    ownerID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Metadata:   metadata,
	}); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "action", action)
	}
}
