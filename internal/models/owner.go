package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOwnerInactive = errors.New("owner is inactive")
)

// Owner represents a bank client. Credential and session data live in the
// surrounding identity system; the core only needs what labels and
// notification addressing require.
type Owner struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Accounts []Account    `gorm:"foreignKey:OwnerID" json:"-"`
	Cards    []CreditCard `gorm:"foreignKey:OwnerID" json:"-"`
	Loans    []Loan       `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for Owner
func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}

	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}

	return o.Validate()
}

// BeforeUpdate hook for Owner
func (o *Owner) BeforeUpdate(tx *gorm.DB) error {
	o.UpdatedAt = time.Now()
	return o.Validate()
}

// Validate validates the owner fields
func (o *Owner) Validate() error {
	if strings.TrimSpace(o.FirstName) == "" {
		return errors.New("first name is required")
	}
	if strings.TrimSpace(o.LastName) == "" {
		return errors.New("last name is required")
	}
	if !strings.Contains(o.Email, "@") {
		return errors.New("valid email is required")
	}
	return nil
}

// FullName returns the display name used for journal labels and notifications
func (o *Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}

// TableName returns the table name for Owner
func (o *Owner) TableName() string {
	return "owners"
}
