package repositories

import (
	"testing"
	"time"

	"bancore/internal/amortization"
	"bancore/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// LoanRepositoryTestSuite is the test suite for the loan repository
type LoanRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	repo  LoanRepositoryInterface
	owner *models.Owner
}

// SetupTest runs before each test
func (s *LoanRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.Owner{}, &models.Account{}, &models.LedgerEntry{},
		&models.Loan{}, &models.Installment{}, &models.CreditCard{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewLoanRepository(db)

	s.owner = &models.Owner{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Active:    true,
	}
	require.NoError(s.T(), db.Create(s.owner).Error)
}

// TearDownTest runs after each test
func (s *LoanRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestLoanRepositoryTestSuite runs the test suite
func TestLoanRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LoanRepositoryTestSuite))
}

func (s *LoanRepositoryTestSuite) createTestAccount(balance string) *models.Account {
	account := &models.Account{
		Number:  models.GenerateAccountNumber(),
		OwnerID: s.owner.ID,
		Balance: decimal.RequireFromString(balance),
		Active:  true,
	}
	require.NoError(s.T(), s.db.Create(account).Error)
	return account
}

// originateTestLoan builds and persists a loan with its annuity schedule,
// disbursing the principal to the given account.
func (s *LoanRepositoryTestSuite) originateTestLoan(account *models.Account, principal, rate string, term int) *models.Loan {
	p := decimal.RequireFromString(principal)
	r := decimal.RequireFromString(rate)

	loan := &models.Loan{
		Number:         models.GenerateLoanNumber(),
		OwnerID:        s.owner.ID,
		OriginatorID:   s.owner.ID,
		Principal:      p,
		AnnualRate:     r,
		TermMonths:     term,
		MonthlyPayment: amortization.MonthlyPayment(p, r, term),
		Active:         true,
	}

	schedule := amortization.BuildSchedule(time.Now().UTC(), p, r, term)
	installments := make([]models.Installment, 0, len(schedule))
	for _, sp := range schedule {
		installments = append(installments, models.Installment{
			Sequence: sp.Sequence,
			DueDate:  sp.DueDate,
			Amount:   sp.Amount,
		})
	}

	_, err := s.repo.ExecuteOrigination(loan, installments, account.ID)
	require.NoError(s.T(), err)
	return loan
}

func (s *LoanRepositoryTestSuite) TestExecuteOrigination() {
	account := s.createTestAccount("0")

	loan := s.originateTestLoan(account, "100000", "12", 12)

	var count int64
	s.db.Model(&models.Installment{}).Where("loan_id = ?", loan.ID).Count(&count)
	assert.Equal(s.T(), int64(12), count)

	var account2 models.Account
	require.NoError(s.T(), s.db.First(&account2, "id = ?", account.ID).Error)
	assert.True(s.T(), decimal.RequireFromString("100000").Equal(account2.Balance))

	var entry models.LedgerEntry
	require.NoError(s.T(), s.db.First(&entry, "account_id = ?", account.ID).Error)
	assert.Equal(s.T(), originLoanDisbursement, entry.Origin)
	assert.Equal(s.T(), "loan "+loan.Number, entry.Beneficiary)
}

func (s *LoanRepositoryTestSuite) TestHasActiveLoan() {
	account := s.createTestAccount("0")

	has, err := s.repo.HasActiveLoan(s.owner.ID)
	require.NoError(s.T(), err)
	assert.False(s.T(), has)

	s.originateTestLoan(account, "10000", "6", 24)

	has, err = s.repo.HasActiveLoan(s.owner.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), has)
}

func (s *LoanRepositoryTestSuite) TestGetByNumber() {
	account := s.createTestAccount("0")
	loan := s.originateTestLoan(account, "10000", "6", 24)

	retrieved, err := s.repo.GetByNumber(loan.Number)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), loan.ID, retrieved.ID)
	assert.True(s.T(), decimal.RequireFromString("443.21").Equal(retrieved.MonthlyPayment))
}

func (s *LoanRepositoryTestSuite) TestGetUnpaidTotalByOwnerID() {
	account := s.createTestAccount("0")
	s.originateTestLoan(account, "10000", "6", 24)

	total, err := s.repo.GetUnpaidTotalByOwnerID(s.owner.ID)
	require.NoError(s.T(), err)

	// 24 installments of 443.21
	expected := decimal.RequireFromString("443.21").Mul(decimal.NewFromInt(24))
	assert.True(s.T(), expected.Equal(total.Round(2)), "got %s", total)
}

func (s *LoanRepositoryTestSuite) TestGetSystemDebtAggregates() {
	account := s.createTestAccount("0")
	s.originateTestLoan(account, "10000", "6", 24)

	card := &models.CreditCard{
		Number:           models.GenerateCardNumber(),
		OwnerID:          s.owner.ID,
		Limit:            decimal.RequireFromString("5000"),
		Debt:             decimal.RequireFromString("1000"),
		VerificationHash: "test-hash",
		ExpiresAt:        time.Now().UTC().AddDate(4, 0, 0),
		Active:           true,
	}
	require.NoError(s.T(), s.db.Create(card).Error)

	total, debtors, err := s.repo.GetSystemDebtAggregates()
	require.NoError(s.T(), err)

	// One indebted owner: 24 x 443.21 in installments plus 1000 card debt
	expected := decimal.RequireFromString("443.21").Mul(decimal.NewFromInt(24)).
		Add(decimal.RequireFromString("1000"))
	assert.Equal(s.T(), int64(1), debtors)
	assert.True(s.T(), expected.Equal(total.Round(2)), "got %s", total)
}

func (s *LoanRepositoryTestSuite) TestExecuteLoanPayment_WholeInstallmentsOnly() {
	account := s.createTestAccount("0")
	loan := s.originateTestLoan(account, "10000", "6", 24)

	// Disbursement left 10000 in the account; 1000 covers two installments
	// of 443.21 with 113.58 left unapplied
	alloc, entryID, err := s.repo.ExecuteLoanPayment(loan.ID, account.ID,
		decimal.RequireFromString("1000.00"))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, alloc.InstallmentsPaid)
	assert.True(s.T(), decimal.RequireFromString("886.42").Equal(alloc.AmountApplied))
	assert.True(s.T(), decimal.RequireFromString("113.58").Equal(alloc.AmountReturned))
	assert.False(s.T(), alloc.Settled)
	assert.NotEqual(s.T(), uuid.Nil, entryID)

	// Only the applied amount left the account
	var account2 models.Account
	require.NoError(s.T(), s.db.First(&account2, "id = ?", account.ID).Error)
	assert.True(s.T(), decimal.RequireFromString("9113.58").Equal(account2.Balance))

	unpaid, err := s.repo.GetUnpaidInstallments(loan.ID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), unpaid, 22)
	assert.Equal(s.T(), 3, unpaid[0].Sequence)
}

func (s *LoanRepositoryTestSuite) TestExecuteLoanPayment_BelowInstallmentRefused() {
	account := s.createTestAccount("0")
	loan := s.originateTestLoan(account, "10000", "6", 24)

	_, _, err := s.repo.ExecuteLoanPayment(loan.ID, account.ID,
		decimal.RequireFromString("400.00"))
	assert.ErrorIs(s.T(), err, ErrPaymentBelowInstallment)

	var account2 models.Account
	require.NoError(s.T(), s.db.First(&account2, "id = ?", account.ID).Error)
	assert.True(s.T(), decimal.RequireFromString("10000").Equal(account2.Balance))
}

func (s *LoanRepositoryTestSuite) TestExecuteLoanPayment_SettlesLoan() {
	account := s.createTestAccount("500")
	loan := s.originateTestLoan(account, "1200", "12", 1)

	// Single installment of 1212; account holds 1700 after disbursement
	alloc, _, err := s.repo.ExecuteLoanPayment(loan.ID, account.ID,
		decimal.RequireFromString("1212.00"))
	require.NoError(s.T(), err)
	assert.True(s.T(), alloc.Settled)
	assert.Equal(s.T(), 1, alloc.InstallmentsPaid)

	retrieved, err := s.repo.GetByID(loan.ID)
	require.NoError(s.T(), err)
	assert.False(s.T(), retrieved.Active)

	_, _, err = s.repo.ExecuteLoanPayment(loan.ID, account.ID, decimal.RequireFromString("100.00"))
	assert.ErrorIs(s.T(), err, models.ErrLoanNotActive)
}

func (s *LoanRepositoryTestSuite) TestExecuteLoanPayment_InsufficientFundsRollsBack() {
	account := s.createTestAccount("0")
	loan := s.originateTestLoan(account, "10000", "6", 24)

	// Drain the account out of band, then try to pay
	require.NoError(s.T(), s.db.Model(account).Update("balance", decimal.RequireFromString("100")).Error)

	_, _, err := s.repo.ExecuteLoanPayment(loan.ID, account.ID,
		decimal.RequireFromString("443.21"))
	assert.ErrorIs(s.T(), err, ErrInsufficientFunds)

	unpaid, err := s.repo.GetUnpaidInstallments(loan.ID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), unpaid, 24)
}

func (s *LoanRepositoryTestSuite) TestExecuteRateRevision() {
	account := s.createTestAccount("0")
	loan := s.originateTestLoan(account, "10000", "6", 24)

	newRate := decimal.RequireFromString("4")
	newPayment := decimal.RequireFromString("430.00")

	revised, err := s.repo.ExecuteRateRevision(loan.ID, newRate, newPayment)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(24), revised)

	retrieved, err := s.repo.GetByID(loan.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), newRate.Equal(retrieved.AnnualRate))
	assert.True(s.T(), newPayment.Equal(retrieved.MonthlyPayment))

	unpaid, err := s.repo.GetUnpaidInstallments(loan.ID)
	require.NoError(s.T(), err)
	for _, inst := range unpaid {
		assert.True(s.T(), newPayment.Equal(inst.Amount))
	}
}

func (s *LoanRepositoryTestSuite) TestExecuteRateRevision_InactiveLoan() {
	account := s.createTestAccount("500")
	loan := s.originateTestLoan(account, "1200", "12", 1)

	_, _, err := s.repo.ExecuteLoanPayment(loan.ID, account.ID, decimal.RequireFromString("1212.00"))
	require.NoError(s.T(), err)

	_, err = s.repo.ExecuteRateRevision(loan.ID, decimal.RequireFromString("4"), decimal.RequireFromString("100"))
	assert.ErrorIs(s.T(), err, models.ErrLoanNotActive)
}

func (s *LoanRepositoryTestSuite) TestMarkOverdueInstallments() {
	account := s.createTestAccount("0")
	loan := s.originateTestLoan(account, "10000", "6", 24)

	// Backdate the first two installments
	require.NoError(s.T(), s.db.Model(&models.Installment{}).
		Where("loan_id = ? AND sequence <= ?", loan.ID, 2).
		Update("due_date", time.Now().AddDate(0, -1, 0)).Error)

	flagged, err := s.repo.MarkOverdueInstallments(time.Now())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), flagged)

	// Sweep again: nothing new to flag
	flagged, err = s.repo.MarkOverdueInstallments(time.Now())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), flagged)

	var overdue int64
	s.db.Model(&models.Installment{}).Where("loan_id = ? AND overdue = ?", loan.ID, true).Count(&overdue)
	assert.Equal(s.T(), int64(2), overdue)
}
