package repositories

import (
	"errors"
	"fmt"
	"sync"

	"bancore/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAccountNotActive    = errors.New("account is not active")
	ErrAccountIsPrincipal  = errors.New("principal account cannot be closed")
	ErrNoPrincipalAccount  = errors.New("owner has no principal account")
	ErrSameAccount         = errors.New("source and destination accounts are the same")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
	mu sync.Mutex // For number generation
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByNumber retrieves an account by its 9-digit number
func (r *accountRepository) GetByNumber(number string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("number = ?", number).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return &account, nil
}

// GetByOwnerID retrieves all accounts for an owner
func (r *accountRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for owner: %w", err)
	}
	return accounts, nil
}

// GetPrincipalByOwnerID retrieves the owner's principal account. Every owner
// has at most one, enforced by a partial unique index.
func (r *accountRepository) GetPrincipalByOwnerID(ownerID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("owner_id = ? AND principal = ?", ownerID, true).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPrincipalAccount
		}
		return nil, fmt.Errorf("failed to get principal account: %w", err)
	}
	return &account, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// GenerateUniqueNumber generates an account number that is unused across the
// shared account/loan number namespace
func (r *accountRepository) GenerateUniqueNumber() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return generateUniqueNumber(r.db, models.GenerateAccountNumber)
}

// ApplyEntry applies a single credit or debit to an account and records the
// matching journal entry, atomically and under a row lock.
func (r *accountRepository) ApplyEntry(accountID uuid.UUID, amount decimal.Decimal, direction, origin, beneficiary string) (uuid.UUID, error) {
	var entryID uuid.UUID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		if !account.IsActive() {
			return ErrAccountNotActive
		}

		balanceBefore := account.Balance

		switch direction {
		case models.EntryDirectionDebit:
			if err := account.Debit(amount); err != nil {
				if errors.Is(err, models.ErrInsufficientFunds) {
					return ErrInsufficientFunds
				}
				return err
			}
		case models.EntryDirectionCredit:
			if err := account.Credit(amount); err != nil {
				return err
			}
		default:
			return models.ErrInvalidEntryDirection
		}

		if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}

		entry := &models.LedgerEntry{
			AccountID:     accountID,
			Direction:     direction,
			Amount:        amount,
			Origin:        origin,
			Beneficiary:   beneficiary,
			Status:        models.EntryStatusCompleted,
			BalanceBefore: balanceBefore,
			BalanceAfter:  account.Balance,
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create journal entry: %w", err)
		}
		entryID = entry.ID

		return nil
	})

	return entryID, err
}

// ExecuteAtomicTransfer performs an atomic account-to-account transfer with
// row locking, writing a debit and a credit journal entry. Both sides commit
// or neither does.
func (r *accountRepository) ExecuteAtomicTransfer(fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, origin, fromBeneficiary, toBeneficiary string) (debitEntryID, creditEntryID uuid.UUID, err error) {
	if fromAccountID == toAccountID {
		return uuid.Nil, uuid.Nil, ErrSameAccount
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		debitEntryID, err = transferLeg(tx, fromAccountID, amount, models.EntryDirectionDebit, origin, fromBeneficiary)
		if err != nil {
			return err
		}

		creditEntryID, err = transferLeg(tx, toAccountID, amount, models.EntryDirectionCredit, origin, toBeneficiary)
		return err
	})

	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return debitEntryID, creditEntryID, nil
}

// ExecuteClose deactivates an account, first sweeping any remaining balance
// to the owner's principal account. The sweep is an internal move and is not
// journaled. Principal accounts cannot be closed.
func (r *accountRepository) ExecuteClose(accountID uuid.UUID) (decimal.Decimal, error) {
	swept := decimal.Zero

	err := r.db.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		if account.Principal {
			return ErrAccountIsPrincipal
		}

		if !account.IsActive() {
			return ErrAccountNotActive
		}

		if account.Balance.GreaterThan(decimal.Zero) {
			var principal models.Account
			if err := lockForUpdate(tx).
				Where("owner_id = ? AND principal = ?", account.OwnerID, true).
				First(&principal).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNoPrincipalAccount
				}
				return fmt.Errorf("failed to lock principal account: %w", err)
			}

			swept = account.Balance
			if err := account.Debit(swept); err != nil {
				return err
			}
			if err := principal.Credit(swept); err != nil {
				return err
			}

			if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
				return fmt.Errorf("failed to clear closing balance: %w", err)
			}
			if err := tx.Model(&principal).Update("balance", principal.Balance).Error; err != nil {
				return fmt.Errorf("failed to credit principal account: %w", err)
			}
		}

		if err := account.Deactivate(); err != nil {
			return err
		}

		if err := tx.Model(account).Update("active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate account: %w", err)
		}

		return nil
	})

	if err != nil {
		return decimal.Zero, err
	}
	return swept, nil
}

// lockAccount fetches an account under a row lock within tx
func lockAccount(tx *gorm.DB, accountID uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: accountID}
	if err := lockForUpdate(tx).First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return account, nil
}

// transferLeg locks one account and applies one side of a transfer
func transferLeg(tx *gorm.DB, accountID uuid.UUID, amount decimal.Decimal, direction, origin, beneficiary string) (uuid.UUID, error) {
	account, err := lockAccount(tx, accountID)
	if err != nil {
		return uuid.Nil, err
	}

	if !account.IsActive() {
		return uuid.Nil, ErrAccountNotActive
	}

	return applyLeg(tx, account, amount, direction, origin, beneficiary)
}

// applyLeg mutates an already-locked account and writes its journal entry
func applyLeg(tx *gorm.DB, account *models.Account, amount decimal.Decimal, direction, origin, beneficiary string) (uuid.UUID, error) {
	balanceBefore := account.Balance

	if direction == models.EntryDirectionDebit {
		if err := account.Debit(amount); err != nil {
			if errors.Is(err, models.ErrInsufficientFunds) {
				return uuid.Nil, ErrInsufficientFunds
			}
			return uuid.Nil, err
		}
	} else {
		if err := account.Credit(amount); err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to update account balance: %w", err)
	}

	entry := &models.LedgerEntry{
		AccountID:     account.ID,
		Direction:     direction,
		Amount:        amount,
		Origin:        origin,
		Beneficiary:   beneficiary,
		Status:        models.EntryStatusCompleted,
		BalanceBefore: balanceBefore,
		BalanceAfter:  account.Balance,
	}

	if err := tx.Create(entry).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	return entry.ID, nil
}

// generateUniqueNumber draws numbers from the shared 9-digit namespace until
// one is unused by both accounts and loans
func generateUniqueNumber(db *gorm.DB, generate func() string) (string, error) {
	maxAttempts := 10
	for i := 0; i < maxAttempts; i++ {
		number := generate()

		taken, err := numberInUse(db, number)
		if err != nil {
			return "", err
		}

		if !taken {
			return number, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique number after %d attempts", maxAttempts)
}

// numberInUse checks the shared account/loan number namespace
func numberInUse(db *gorm.DB, number string) (bool, error) {
	var count int64
	if err := db.Model(&models.Account{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account number uniqueness: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	if err := db.Model(&models.Loan{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check loan number uniqueness: %w", err)
	}
	return count > 0, nil
}
