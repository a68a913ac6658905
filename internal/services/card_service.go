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
)

var (
	ErrCardNotFound = errors.New("credit card not found")
)

// cardExpiryYears is how long an issued card stays valid
const cardExpiryYears = 4

// cardService implements CardServiceInterface
type cardService struct {
	cardRepo   repositories.CardRepositoryInterface
	chargeRepo repositories.ChargeRepositoryInterface
	ownerRepo  repositories.OwnerRepositoryInterface
	auditRepo  repositories.AuditLogRepositoryInterface
	verifier   VerifierInterface
	validator  *validation.Validator
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewCardService creates the credit-card facility service
func NewCardService(
	cardRepo repositories.CardRepositoryInterface,
	chargeRepo repositories.ChargeRepositoryInterface,
	ownerRepo repositories.OwnerRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	verifier VerifierInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CardServiceInterface {
	return &cardService{
		cardRepo:   cardRepo,
		chargeRepo: chargeRepo,
		ownerRepo:  ownerRepo,
		auditRepo:  auditRepo,
		verifier:   verifier,
		validator:  validation.GetValidator(),
		metrics:    metrics,
		logger:     logger,
	}
}

// IssueCard issues a credit card to an owner: fresh 16-digit number, hashed
// verification code, zero debt, four-year expiry.
func (s *cardService) IssueCard(req *dto.IssueCardRequest) (*models.CreditCard, error) {
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

	number, err := s.cardRepo.GenerateUniqueNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to generate card number: %w", err)
	}

	hash, err := s.verifier.Hash(req.VerificationCode)
	if err != nil {
		return nil, fmt.Errorf("failed to hash verification code: %w", err)
	}

	card := &models.CreditCard{
		Number:           number,
		OwnerID:          owner.ID,
		Limit:            req.Limit,
		VerificationHash: hash,
		ExpiresAt:        time.Now().UTC().AddDate(cardExpiryYears, 0, 0),
		Active:           true,
	}
	if err := s.cardRepo.Create(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.metrics.IncrementCounter("card.issued", nil)
	s.writeAudit(&owner.ID, models.AuditActionCardIssued, "credit_card", card.ID.String(), models.JSONBMap{
		"number": card.MaskedNumber(),
		"limit":  card.Limit.String(),
	})

	return card, nil
}

// CancelCard deactivates a card; refused while any debt is outstanding
func (s *cardService) CancelCard(cardNumber string) error {
	card, err := s.loadCard(cardNumber)
	if err != nil {
		return err
	}

	if err := card.Cancel(); err != nil {
		return err
	}

	if err := s.cardRepo.Update(card); err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	s.writeAudit(&card.OwnerID, models.AuditActionCardCancelled, "credit_card", card.ID.String(), models.JSONBMap{
		"number": card.MaskedNumber(),
	})

	return nil
}

// ChangeLimit raises or lowers a card's credit limit, never below its debt
func (s *cardService) ChangeLimit(req *dto.ChangeLimitRequest) (*models.CreditCard, error) {
	if fieldErrors := s.validator.ValidateStruct(req); fieldErrors != nil {
		return nil, apperrors.NewValidationFailure(fieldErrors)
	}

	card, err := s.loadCard(req.CardNumber)
	if err != nil {
		return nil, err
	}
	if !card.Active {
		return nil, models.ErrCardNotActive
	}

	previous := card.Limit
	if err := card.ChangeLimit(req.NewLimit); err != nil {
		return nil, err
	}

	if err := s.cardRepo.Update(card); err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.writeAudit(&card.OwnerID, models.AuditActionCardLimitChanged, "credit_card", card.ID.String(), models.JSONBMap{
		"number":    card.MaskedNumber(),
		"old_limit": previous.String(),
		"new_limit": card.Limit.String(),
	})

	return card, nil
}

// GetCardByNumber resolves a card by its 16-digit number
func (s *cardService) GetCardByNumber(number string) (*models.CreditCard, error) {
	return s.loadCard(number)
}

// GetCharges returns a card's consumption history, newest first
func (s *cardService) GetCharges(cardID uuid.UUID, offset, limit int) ([]models.CardCharge, int64, error) {
	charges, total, err := s.chargeRepo.GetByCardID(cardID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load charges: %w", err)
	}
	return charges, total, nil
}

func (s *cardService) loadCard(number string) (*models.CreditCard, error) {
	card, err := s.cardRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to load card: %w", err)
	}
	return card, nil
}

func (s *cardService) writeAudit(ownerID *uuid.UUID, action, resource, resourceID string, metadata models.JSONBMap) {
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
