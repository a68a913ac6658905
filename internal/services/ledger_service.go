package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bancore/internal/dto"
	apperrors "bancore/internal/errors"
	"bancore/internal/models"
	"bancore/internal/repositories"
	"bancore/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrOwnerInactive   = errors.New("owner is inactive")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrAccountNotFound = errors.New("account not found")
	ErrNoPrincipal     = errors.New("owner has no principal account")
)

const originInitialDeposit = "initial deposit"

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	ownerRepo   repositories.OwnerRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	ledgerRepo  repositories.LedgerRepositoryInterface
	auditRepo   repositories.AuditLogRepositoryInterface
	validator   *validation.Validator
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewLedgerService creates the savings-account lifecycle service
func NewLedgerService(
	ownerRepo repositories.OwnerRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		ownerRepo:   ownerRepo,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		auditRepo:   auditRepo,
		validator:   validation.GetValidator(),
		metrics:     metrics,
		logger:      logger,
	}
}

// OpenPrincipal onboards a new owner together with their principal account.
// Every owner holds exactly one principal account for the whole relationship.
func (s *ledgerService) OpenPrincipal(req *dto.OpenPrincipalRequest) (*models.Owner, *models.Account, error) {
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return nil, nil, apperrors.NewValidationFailure(fieldErrors)
	}

	if _, err := s.ownerRepo.GetByEmail(req.Email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrOwnerNotFound) {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}

	owner := &models.Owner{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Active:    true,
	}
	if err := s.ownerRepo.Create(owner); err != nil {
		if errors.Is(err, repositories.ErrOwnerEmailExists) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("failed to create owner: %w", err)
	}

	account, err := s.openAccount(owner, req.InitialBalance, true)
	if err != nil {
		return nil, nil, err
	}

	s.metrics.IncrementCounter("account.opened", map[string]string{"kind": "principal"})
	s.writeAudit(&owner.ID, models.AuditActionAccountOpened, "account", account.ID.String(), models.JSONBMap{
		"number":    account.Number,
		"principal": true,
	})

	return owner, account, nil
}

// OpenSecondary opens an additional savings account for an existing owner
func (s *ledgerService) OpenSecondary(req *dto.OpenSecondaryRequest) (*models.Account, error) {
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

	account, err := s.openAccount(owner, req.InitialBalance, false)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("account.opened", map[string]string{"kind": "secondary"})
	s.writeAudit(&owner.ID, models.AuditActionAccountOpened, "account", account.ID.String(), models.JSONBMap{
		"number":    account.Number,
		"principal": false,
	})

	return account, nil
}

// openAccount creates an account with a fresh number from the shared 9-digit
// namespace. A positive opening balance is journaled as the first entry so
// the ledger stays complete from day one.
func (s *ledgerService) openAccount(owner *models.Owner, initialBalance decimal.Decimal, principal bool) (*models.Account, error) {
	number, err := s.accountRepo.GenerateUniqueNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account number: %w", err)
	}

	account := &models.Account{
		Number:    number,
		OwnerID:   owner.ID,
		Balance:   decimal.Zero,
		Principal: principal,
		Active:    true,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if initialBalance.GreaterThan(decimal.Zero) {
		if _, err := s.accountRepo.ApplyEntry(account.ID, initialBalance,
			models.EntryDirectionCredit, originInitialDeposit, owner.FullName()); err != nil {
			return nil, fmt.Errorf("failed to post opening balance: %w", err)
		}
		account.Balance = initialBalance
	}

	return account, nil
}

// Close deactivates a non-principal account, sweeping any remaining balance
// to the owner's principal account first. The sweep is an internal move and
// is not journaled. Returns the swept amount.
func (s *ledgerService) Close(accountNumber string) (decimal.Decimal, error) {
	account, err := s.accountRepo.GetByNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return decimal.Zero, ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to load account: %w", err)
	}

	swept, err := s.accountRepo.ExecuteClose(account.ID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountIsPrincipal):
			return decimal.Zero, repositories.ErrAccountIsPrincipal
		case errors.Is(err, repositories.ErrNoPrincipalAccount):
			return decimal.Zero, ErrNoPrincipal
		default:
			return decimal.Zero, fmt.Errorf("failed to close account: %w", err)
		}
	}

	s.metrics.IncrementCounter("account.closed", nil)
	s.writeAudit(&account.OwnerID, models.AuditActionAccountClosed, "account", account.ID.String(), models.JSONBMap{
		"number": account.Number,
		"swept":  swept.String(),
	})

	return swept, nil
}

// GetAccountByNumber resolves an account by its 9-digit number
func (s *ledgerService) GetAccountByNumber(number string) (*models.Account, error) {
	account, err := s.accountRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account, nil
}

// GetStatement returns the journal entries for an account within a date range
func (s *ledgerService) GetStatement(accountID uuid.UUID, from, to time.Time) ([]models.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetByDateRange(accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load statement: %w", err)
	}
	return entries, nil
}

// GetRecentEntries returns the newest journal entries for an account
func (s *ledgerService) GetRecentEntries(accountID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetRecentByAccountID(accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent entries: %w", err)
	}
	return entries, nil
}

func (s *ledgerService) writeAudit(ownerID *uuid.UUID, action, resource, resourceID string, metadata models.JSONBMap) {
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
