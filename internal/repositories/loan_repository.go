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
	ErrLoanNotFound            = errors.New("loan not found")
	ErrLoanNumberExists        = errors.New("loan number already exists")
	ErrPaymentBelowInstallment = errors.New("payment does not cover the next installment")
)

// Labels loan settlement writes into the journal.
const (
	originLoanDisbursement = "loan_disbursement"
	originLoanPayment      = "loan_payment"
)

// loanRepository implements LoanRepositoryInterface
type loanRepository struct {
	db *gorm.DB
	mu sync.Mutex // For number generation
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepositoryInterface {
	return &loanRepository{db: db}
}

// GetByID retrieves a loan by ID
func (r *loanRepository) GetByID(id uuid.UUID) (*models.Loan, error) {
	loan := &models.Loan{ID: id}
	if err := r.db.First(loan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

// GetByNumber retrieves a loan by its 9-digit number
func (r *loanRepository) GetByNumber(number string) (*models.Loan, error) {
	var loan models.Loan
	if err := r.db.Where("number = ?", number).First(&loan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan by number: %w", err)
	}
	return &loan, nil
}

// GetByOwnerID retrieves all loans for an owner
func (r *loanRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Loan, error) {
	var loans []models.Loan
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to get loans for owner: %w", err)
	}
	return loans, nil
}

// HasActiveLoan reports whether the owner already has an active loan. At most
// one is allowed, enforced by a partial unique index.
func (r *loanRepository) HasActiveLoan(ownerID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Loan{}).
		Where("owner_id = ? AND active = ?", ownerID, true).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check active loan: %w", err)
	}
	return count > 0, nil
}

// GenerateUniqueNumber generates a loan number that is unused across the
// shared account/loan number namespace
func (r *loanRepository) GenerateUniqueNumber() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return generateUniqueNumber(r.db, models.GenerateLoanNumber)
}

// GetInstallments retrieves a loan's full schedule in sequence order
func (r *loanRepository) GetInstallments(loanID uuid.UUID) ([]models.Installment, error) {
	var installments []models.Installment
	if err := r.db.Where("loan_id = ?", loanID).
		Order("sequence ASC").Find(&installments).Error; err != nil {
		return nil, fmt.Errorf("failed to get installments: %w", err)
	}
	return installments, nil
}

// GetUnpaidInstallments retrieves a loan's unpaid installments in sequence order
func (r *loanRepository) GetUnpaidInstallments(loanID uuid.UUID) ([]models.Installment, error) {
	var installments []models.Installment
	if err := r.db.Where("loan_id = ? AND paid = ?", loanID, false).
		Order("sequence ASC").Find(&installments).Error; err != nil {
		return nil, fmt.Errorf("failed to get unpaid installments: %w", err)
	}
	return installments, nil
}

// GetUnpaidTotalByOwnerID sums the unpaid installment amounts across all of
// an owner's loans
func (r *loanRepository) GetUnpaidTotalByOwnerID(ownerID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.Installment{}).
		Select("COALESCE(SUM(installments.amount), 0) as total").
		Joins("JOIN loans ON loans.id = installments.loan_id").
		Where("loans.owner_id = ? AND installments.paid = ?", ownerID, false).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate unpaid loan total: %w", err)
	}

	return result.Total, nil
}

// GetSystemDebtAggregates returns the system-wide outstanding debt (unpaid
// installment amounts plus card debt) and the number of distinct indebted
// owners. Feeds the origination risk check.
func (r *loanRepository) GetSystemDebtAggregates() (decimal.Decimal, int64, error) {
	var result struct {
		Total   decimal.Decimal
		Debtors int64
	}

	query := `
		SELECT COALESCE(SUM(owner_debt), 0) AS total, COUNT(*) AS debtors FROM (
			SELECT owner_id, SUM(amount) AS owner_debt FROM (
				SELECT loans.owner_id AS owner_id, installments.amount AS amount
				FROM installments
				JOIN loans ON loans.id = installments.loan_id
				WHERE installments.paid = FALSE
				UNION ALL
				SELECT owner_id, debt AS amount
				FROM credit_cards
				WHERE active = TRUE AND debt > 0
			) debts
			GROUP BY owner_id
		) per_owner`

	if err := r.db.Raw(query).Scan(&result).Error; err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to aggregate system debt: %w", err)
	}

	return result.Total, result.Debtors, nil
}

// ExecuteOrigination persists a loan with its schedule and disburses the
// principal to the given account, atomically. The credit is journaled
// against the loan number.
func (r *loanRepository) ExecuteOrigination(loan *models.Loan, installments []models.Installment, disburseAccountID uuid.UUID) (uuid.UUID, error) {
	var entryID uuid.UUID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(loan).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrLoanNumberExists
			}
			return fmt.Errorf("failed to create loan: %w", err)
		}

		for i := range installments {
			installments[i].LoanID = loan.ID
		}
		if err := tx.Create(&installments).Error; err != nil {
			return fmt.Errorf("failed to create installments: %w", err)
		}

		account, err := lockAccount(tx, disburseAccountID)
		if err != nil {
			return err
		}

		if !account.IsActive() {
			return ErrAccountNotActive
		}

		entryID, err = applyLeg(tx, account, loan.Principal, models.EntryDirectionCredit,
			originLoanDisbursement, "loan "+loan.Number)
		return err
	})

	if err != nil {
		return uuid.Nil, err
	}
	return entryID, nil
}

// ExecuteLoanPayment settles whole installments from a savings account,
// atomically. The account is debited by the amount actually applied; the
// uncovered remainder never leaves the account. A payment that does not
// cover the next installment in full is refused.
func (r *loanRepository) ExecuteLoanPayment(loanID, accountID uuid.UUID, amount decimal.Decimal) (models.PaymentAllocation, uuid.UUID, error) {
	var alloc models.PaymentAllocation
	var entryID uuid.UUID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		loan := &models.Loan{ID: loanID}
		if err := lockForUpdate(tx).First(loan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLoanNotFound
			}
			return fmt.Errorf("failed to lock loan: %w", err)
		}

		var unpaid []models.Installment
		if err := lockForUpdate(tx).
			Where("loan_id = ? AND paid = ?", loanID, false).
			Order("sequence ASC").Find(&unpaid).Error; err != nil {
			return fmt.Errorf("failed to lock unpaid installments: %w", err)
		}

		var err error
		alloc, err = loan.AllocatePayment(unpaid, amount)
		if err != nil {
			return err
		}

		if alloc.InstallmentsPaid == 0 {
			return ErrPaymentBelowInstallment
		}

		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		if !account.IsActive() {
			return ErrAccountNotActive
		}

		entryID, err = applyLeg(tx, account, alloc.AmountApplied, models.EntryDirectionDebit,
			originLoanPayment, "loan "+loan.Number)
		if err != nil {
			return err
		}

		for i := range unpaid {
			if !unpaid[i].Paid {
				continue
			}
			if err := tx.Model(&unpaid[i]).
				Updates(map[string]interface{}{
					"paid":    true,
					"overdue": false,
					"paid_at": unpaid[i].PaidAt,
				}).Error; err != nil {
				return fmt.Errorf("failed to mark installment paid: %w", err)
			}
		}

		if alloc.Settled {
			if err := tx.Model(loan).Update("active", false).Error; err != nil {
				return fmt.Errorf("failed to settle loan: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return models.PaymentAllocation{}, uuid.Nil, err
	}
	return alloc, entryID, nil
}

// ExecuteRateRevision re-prices a loan's unpaid installments at a new rate
// and payment, atomically. Paid installments are never touched.
func (r *loanRepository) ExecuteRateRevision(loanID uuid.UUID, newRate, newPayment decimal.Decimal) (int64, error) {
	var revised int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		loan := &models.Loan{ID: loanID}
		if err := lockForUpdate(tx).First(loan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLoanNotFound
			}
			return fmt.Errorf("failed to lock loan: %w", err)
		}

		if !loan.Active {
			return models.ErrLoanNotActive
		}

		result := tx.Model(&models.Installment{}).
			Where("loan_id = ? AND paid = ?", loanID, false).
			Updates(map[string]interface{}{
				"amount":     newPayment,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to revise installments: %w", result.Error)
		}
		revised = result.RowsAffected

		if revised == 0 {
			return models.ErrNoUnpaidInstallments
		}

		if err := tx.Model(loan).
			Updates(map[string]interface{}{
				"annual_rate":     newRate,
				"monthly_payment": newPayment,
			}).Error; err != nil {
			return fmt.Errorf("failed to update loan rate: %w", err)
		}

		return nil
	})

	if err != nil {
		return 0, err
	}
	return revised, nil
}

// MarkOverdueInstallments flags every unpaid installment whose due date has
// passed as of the given time. Already-flagged installments are skipped so
// the sweep is idempotent.
func (r *loanRepository) MarkOverdueInstallments(asOf time.Time) (int64, error) {
	result := r.db.Model(&models.Installment{}).
		Where("paid = ? AND overdue = ? AND due_date < ?", false, false, asOf).
		Updates(map[string]interface{}{
			"overdue":    true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark overdue installments: %w", result.Error)
	}

	return result.RowsAffected, nil
}
