package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ChargeStatusApproved = "approved"
	ChargeStatusRejected = "rejected"
)

// CardCharge records a consumption attempt against a credit card. Rejected
// charges are kept for audit but never mutate the card's debt.
type CardCharge struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CardID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"card_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	MerchantName string          `gorm:"type:varchar(255);not null" json:"merchant_name"`
	MerchantID   *uuid.UUID      `gorm:"type:uuid;index" json:"merchant_id,omitempty"`
	Status       string          `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"created_at"`

	// Associations
	Card CreditCard `gorm:"foreignKey:CardID" json:"-"`
}

// BeforeCreate hook for CardCharge
func (cc *CardCharge) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == uuid.Nil {
		cc.ID = uuid.New()
	}

	if cc.CreatedAt.IsZero() {
		cc.CreatedAt = time.Now()
	}

	return cc.Validate()
}

// Validate validates the charge fields
func (cc *CardCharge) Validate() error {
	if cc.CardID == uuid.Nil {
		return errors.New("card ID is required")
	}

	if cc.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("charge amount must be positive")
	}

	if cc.MerchantName == "" {
		return errors.New("merchant name is required")
	}

	if cc.Status != ChargeStatusApproved && cc.Status != ChargeStatusRejected {
		return errors.New("invalid charge status")
	}

	return nil
}

// IsApproved returns true if the charge was approved
func (cc *CardCharge) IsApproved() bool {
	return cc.Status == ChargeStatusApproved
}

// TableName returns the table name for CardCharge
func (cc *CardCharge) TableName() string {
	return "card_charges"
}
