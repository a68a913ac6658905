package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"bancore/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound     = errors.New("credit card not found")
	ErrCardNumberExists = errors.New("card number already exists")
)

// Labels card settlement writes into the journal.
const (
	originCardPayment = "card_payment"
	originCashAdvance = "cash_advance"
)

// cardRepository implements CardRepositoryInterface
type cardRepository struct {
	db *gorm.DB
	mu sync.Mutex // For number generation
}

// NewCardRepository creates a new credit card repository
func NewCardRepository(db *gorm.DB) CardRepositoryInterface {
	return &cardRepository{db: db}
}

// Create creates a new credit card
func (r *cardRepository) Create(card *models.CreditCard) error {
	if err := r.db.Create(card).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCardNumberExists
		}
		return fmt.Errorf("failed to create credit card: %w", err)
	}
	return nil
}

// GetByID retrieves a credit card by ID
func (r *cardRepository) GetByID(id uuid.UUID) (*models.CreditCard, error) {
	card := &models.CreditCard{ID: id}
	if err := r.db.First(card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get credit card: %w", err)
	}
	return card, nil
}

// GetByNumber retrieves a credit card by its 16-digit number
func (r *cardRepository) GetByNumber(number string) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := r.db.Where("number = ?", number).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get credit card by number: %w", err)
	}
	return &card, nil
}

// GetByOwnerID retrieves all credit cards for an owner
func (r *cardRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.CreditCard, error) {
	var cards []models.CreditCard
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get credit cards for owner: %w", err)
	}
	return cards, nil
}

// Update updates a credit card
func (r *cardRepository) Update(card *models.CreditCard) error {
	if err := r.db.Save(card).Error; err != nil {
		return fmt.Errorf("failed to update credit card: %w", err)
	}
	return nil
}

// GenerateUniqueNumber generates an unused 16-digit card number
func (r *cardRepository) GenerateUniqueNumber() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxAttempts := 10
	for i := 0; i < maxAttempts; i++ {
		number := models.GenerateCardNumber()

		var count int64
		if err := r.db.Model(&models.CreditCard{}).
			Where("number = ?", number).
			Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check card number uniqueness: %w", err)
		}

		if count == 0 {
			return number, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique card number after %d attempts", maxAttempts)
}

// GetTotalDebtByOwnerID sums the outstanding debt across an owner's active cards
func (r *cardRepository) GetTotalDebtByOwnerID(ownerID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.CreditCard{}).
		Select("COALESCE(SUM(debt), 0) as total").
		Where("owner_id = ? AND active = ?", ownerID, true).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate total card debt: %w", err)
	}

	return result.Total, nil
}

// ExecuteAuthorization decides a merchant charge against the card's available
// credit under a row lock. A refused charge is still recorded with rejected
// status and committed; the refusal reason comes back as the error alongside
// the recorded charge.
func (r *cardRepository) ExecuteAuthorization(cardID uuid.UUID, amount decimal.Decimal, merchantName string, merchantID *uuid.UUID, now time.Time) (*models.CardCharge, error) {
	var charge *models.CardCharge
	var rejectReason error

	err := r.db.Transaction(func(tx *gorm.DB) error {
		card, err := lockCard(tx, cardID)
		if err != nil {
			return err
		}

		switch {
		case !card.Active:
			rejectReason = models.ErrCardNotActive
		case card.IsExpired(now):
			rejectReason = models.ErrCardExpired
		case !card.CanConsume(amount):
			rejectReason = models.ErrExceedsAvailable
		}

		status := models.ChargeStatusApproved
		if rejectReason != nil {
			status = models.ChargeStatusRejected
		}

		charge = &models.CardCharge{
			CardID:       cardID,
			Amount:       amount,
			MerchantName: merchantName,
			MerchantID:   merchantID,
			Status:       status,
		}

		if err := tx.Create(charge).Error; err != nil {
			return fmt.Errorf("failed to record card charge: %w", err)
		}

		if rejectReason != nil {
			return nil
		}

		if err := card.Consume(amount); err != nil {
			return err
		}

		if err := tx.Model(card).Update("debt", card.Debt).Error; err != nil {
			return fmt.Errorf("failed to update card debt: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}
	return charge, rejectReason
}

// ExecuteCardPayment repays card debt from a savings account, atomically.
// The account is debited by min(requested, debt), never by the requested
// amount, and the debit is journaled against the masked card number.
func (r *cardRepository) ExecuteCardPayment(cardID, accountID uuid.UUID, requested decimal.Decimal) (decimal.Decimal, uuid.UUID, error) {
	var applied decimal.Decimal
	var entryID uuid.UUID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		card, err := lockCard(tx, cardID)
		if err != nil {
			return err
		}

		applied, err = card.Repay(requested)
		if err != nil {
			return err
		}

		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		if !account.IsActive() {
			return ErrAccountNotActive
		}

		entryID, err = applyLeg(tx, account, applied, models.EntryDirectionDebit, originCardPayment, card.MaskedNumber())
		if err != nil {
			return err
		}

		if err := tx.Model(card).Update("debt", card.Debt).Error; err != nil {
			return fmt.Errorf("failed to update card debt: %w", err)
		}

		return nil
	})

	if err != nil {
		return decimal.Zero, uuid.Nil, err
	}
	return applied, entryID, nil
}

// ExecuteCashAdvance draws cash against the card: debt grows by the amount
// plus the advance interest while the savings account is credited with the
// amount alone. The gross is recorded as an approved charge labeled
// "cash advance".
func (r *cardRepository) ExecuteCashAdvance(cardID, accountID uuid.UUID, amount, interest decimal.Decimal) (uuid.UUID, error) {
	var entryID uuid.UUID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		card, err := lockCard(tx, cardID)
		if err != nil {
			return err
		}

		if card.IsExpired(time.Now()) {
			return models.ErrCardExpired
		}

		gross := amount.Add(interest)
		if err := card.Consume(gross); err != nil {
			return err
		}

		if err := tx.Model(card).Update("debt", card.Debt).Error; err != nil {
			return fmt.Errorf("failed to update card debt: %w", err)
		}

		charge := &models.CardCharge{
			CardID:       cardID,
			Amount:       gross,
			MerchantName: "cash advance",
			Status:       models.ChargeStatusApproved,
		}
		if err := tx.Create(charge).Error; err != nil {
			return fmt.Errorf("failed to record cash advance charge: %w", err)
		}

		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		if !account.IsActive() {
			return ErrAccountNotActive
		}

		entryID, err = applyLeg(tx, account, amount, models.EntryDirectionCredit, originCashAdvance, card.MaskedNumber())
		return err
	})

	if err != nil {
		return uuid.Nil, err
	}
	return entryID, nil
}

// lockCard fetches a credit card under a row lock within tx
func lockCard(tx *gorm.DB, cardID uuid.UUID) (*models.CreditCard, error) {
	card := &models.CreditCard{ID: cardID}
	if err := lockForUpdate(tx).First(card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to lock credit card: %w", err)
	}
	return card, nil
}
