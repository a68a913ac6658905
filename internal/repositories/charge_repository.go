package repositories

import (
	"errors"
	"fmt"

	"bancore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrChargeNotFound = errors.New("card charge not found")

// chargeRepository implements ChargeRepositoryInterface. Charges are written
// by ExecuteAuthorization and only read here.
type chargeRepository struct {
	db *gorm.DB
}

// NewChargeRepository creates a new card charge repository
func NewChargeRepository(db *gorm.DB) ChargeRepositoryInterface {
	return &chargeRepository{db: db}
}

// GetByID retrieves a card charge by ID
func (r *chargeRepository) GetByID(id uuid.UUID) (*models.CardCharge, error) {
	charge := &models.CardCharge{ID: id}
	if err := r.db.First(charge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChargeNotFound
		}
		return nil, fmt.Errorf("failed to get card charge: %w", err)
	}
	return charge, nil
}

// GetByCardID retrieves charges for a card with pagination, newest first
func (r *chargeRepository) GetByCardID(cardID uuid.UUID, offset, limit int) ([]models.CardCharge, int64, error) {
	var charges []models.CardCharge
	var total int64

	if err := r.db.Model(&models.CardCharge{}).
		Where("card_id = ?", cardID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count card charges: %w", err)
	}

	if err := r.db.Where("card_id = ?", cardID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&charges).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get card charges: %w", err)
	}

	return charges, total, nil
}
