package repositories

import (
	"errors"
	"fmt"

	"bancore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrOwnerEmailExists = errors.New("owner email already exists")
)

// ownerRepository implements OwnerRepositoryInterface
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) OwnerRepositoryInterface {
	return &ownerRepository{db: db}
}

// Create creates a new owner
func (r *ownerRepository) Create(owner *models.Owner) error {
	if err := r.db.Create(owner).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrOwnerEmailExists
		}
		return fmt.Errorf("failed to create owner: %w", err)
	}
	return nil
}

// GetByID retrieves an owner by ID
func (r *ownerRepository) GetByID(id uuid.UUID) (*models.Owner, error) {
	owner := &models.Owner{ID: id}
	if err := r.db.First(owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return owner, nil
}

// GetByEmail retrieves an owner by email
func (r *ownerRepository) GetByEmail(email string) (*models.Owner, error) {
	var owner models.Owner
	if err := r.db.Where("email = ?", email).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get owner by email: %w", err)
	}
	return &owner, nil
}

// Update updates an owner
func (r *ownerRepository) Update(owner *models.Owner) error {
	if err := r.db.Save(owner).Error; err != nil {
		return fmt.Errorf("failed to update owner: %w", err)
	}
	return nil
}
