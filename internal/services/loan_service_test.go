package services_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"bancore/internal/dto"
	"bancore/internal/models"
	"bancore/internal/repositories"
	"bancore/internal/repositories/repository_mocks"
	"bancore/internal/services"
	"bancore/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LoanServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	loanRepo    *repository_mocks.MockLoanRepositoryInterface
	cardRepo    *repository_mocks.MockCardRepositoryInterface
	accountRepo *repository_mocks.MockAccountRepositoryInterface
	ownerRepo   *repository_mocks.MockOwnerRepositoryInterface
	auditRepo   *repository_mocks.MockAuditLogRepositoryInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     services.LoanServiceInterface
	owner       *models.Owner
}

func TestLoanServiceSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}

func (s *LoanServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.loanRepo = repository_mocks.NewMockLoanRepositoryInterface(s.ctrl)
	s.cardRepo = repository_mocks.NewMockCardRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.ownerRepo = repository_mocks.NewMockOwnerRepositoryInterface(s.ctrl)
	s.auditRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewLoanService(
		s.loanRepo,
		s.cardRepo,
		s.accountRepo,
		s.ownerRepo,
		s.auditRepo,
		s.metrics,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.owner = &models.Owner{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Active:    true,
	}
}

func (s *LoanServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LoanServiceTestSuite) TestOriginate_BuildsAnnuitySchedule() {
	principalAccount := &models.Account{
		ID:        uuid.New(),
		Number:    "123456789",
		OwnerID:   s.owner.ID,
		Principal: true,
		Active:    true,
	}
	originatorID := uuid.New()
	entryID := uuid.New()

	s.ownerRepo.EXPECT().GetByID(s.owner.ID).Return(s.owner, nil)
	s.loanRepo.EXPECT().HasActiveLoan(s.owner.ID).Return(false, nil)
	s.loanRepo.EXPECT().GetSystemDebtAggregates().Return(decimal.Zero, int64(0), nil)
	s.accountRepo.EXPECT().GetPrincipalByOwnerID(s.owner.ID).Return(principalAccount, nil)
	s.loanRepo.EXPECT().GenerateUniqueNumber().Return("222333444", nil)
	s.loanRepo.EXPECT().ExecuteOrigination(gomock.Any(), gomock.Any(), principalAccount.ID).DoAndReturn(
		func(loan *models.Loan, installments []models.Installment, _ uuid.UUID) (uuid.UUID, error) {
			s.True(decimal.NewFromFloat(8884.88).Equal(loan.MonthlyPayment), "got payment %s", loan.MonthlyPayment)
			s.Len(installments, 12)
			s.Equal(1, installments[0].Sequence)
			s.Equal(12, installments[11].Sequence)
			loan.ID = uuid.New()
			return entryID, nil
		})
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	loan, err := s.service.Originate(&dto.OriginateLoanRequest{
		OwnerID:      s.owner.ID,
		OriginatorID: originatorID,
		Principal:    decimal.NewFromFloat(100000.00),
		AnnualRate:   decimal.NewFromFloat(12.0),
		TermMonths:   12,
	})

	s.NoError(err)
	s.Require().NotNil(loan)
	s.Equal("222333444", loan.Number)
	s.True(loan.Active)
}

func (s *LoanServiceTestSuite) TestOriginate_ActiveLoanExists() {
	s.ownerRepo.EXPECT().GetByID(s.owner.ID).Return(s.owner, nil)
	s.loanRepo.EXPECT().HasActiveLoan(s.owner.ID).Return(true, nil)

	_, err := s.service.Originate(&dto.OriginateLoanRequest{
		OwnerID:      s.owner.ID,
		OriginatorID: uuid.New(),
		Principal:    decimal.NewFromFloat(5000.00),
		AnnualRate:   decimal.NewFromFloat(10.0),
		TermMonths:   12,
	})
	s.ErrorIs(err, services.ErrActiveLoanExists)
}

func (s *LoanServiceTestSuite) TestOriginate_HighRiskRefused() {
	s.ownerRepo.EXPECT().GetByID(s.owner.ID).Return(s.owner, nil)
	s.loanRepo.EXPECT().HasActiveLoan(s.owner.ID).Return(false, nil)
	// system average 500 per debtor, the owner already holds 600
	s.loanRepo.EXPECT().GetSystemDebtAggregates().Return(decimal.NewFromFloat(1000.00), int64(2), nil)
	s.loanRepo.EXPECT().GetUnpaidTotalByOwnerID(s.owner.ID).Return(decimal.NewFromFloat(600.00), nil)
	s.cardRepo.EXPECT().GetTotalDebtByOwnerID(s.owner.ID).Return(decimal.Zero, nil)

	_, err := s.service.Originate(&dto.OriginateLoanRequest{
		OwnerID:      s.owner.ID,
		OriginatorID: uuid.New(),
		Principal:    decimal.NewFromFloat(5000.00),
		AnnualRate:   decimal.NewFromFloat(10.0),
		TermMonths:   12,
	})
	s.ErrorIs(err, services.ErrHighRisk)
}

func (s *LoanServiceTestSuite) TestRiskCheck_NoDebtorsMeansNoBaseline() {
	s.loanRepo.EXPECT().GetSystemDebtAggregates().Return(decimal.Zero, int64(0), nil)

	highRisk, err := s.service.RiskCheck(s.owner.ID, decimal.NewFromFloat(1000000.00))
	s.NoError(err)
	s.False(highRisk)
}

func (s *LoanServiceTestSuite) TestRiskCheck_ProposalPushesOverAverage() {
	s.loanRepo.EXPECT().GetSystemDebtAggregates().Return(decimal.NewFromFloat(1000.00), int64(2), nil)
	s.loanRepo.EXPECT().GetUnpaidTotalByOwnerID(s.owner.ID).Return(decimal.NewFromFloat(100.00), nil)
	s.cardRepo.EXPECT().GetTotalDebtByOwnerID(s.owner.ID).Return(decimal.Zero, nil)

	highRisk, err := s.service.RiskCheck(s.owner.ID, decimal.NewFromFloat(450.00))
	s.NoError(err)
	s.True(highRisk)
}

func (s *LoanServiceTestSuite) TestRiskCheck_CardDebtCounts() {
	s.loanRepo.EXPECT().GetSystemDebtAggregates().Return(decimal.NewFromFloat(1000.00), int64(2), nil)
	s.loanRepo.EXPECT().GetUnpaidTotalByOwnerID(s.owner.ID).Return(decimal.NewFromFloat(200.00), nil)
	s.cardRepo.EXPECT().GetTotalDebtByOwnerID(s.owner.ID).Return(decimal.NewFromFloat(400.00), nil)

	highRisk, err := s.service.RiskCheck(s.owner.ID, decimal.Zero)
	s.NoError(err)
	s.True(highRisk)
}

func (s *LoanServiceTestSuite) TestReviseRate_RepricesUnpaidInstallments() {
	loan := &models.Loan{
		ID:         uuid.New(),
		Number:     "222333444",
		OwnerID:    s.owner.ID,
		AnnualRate: decimal.NewFromFloat(12.0),
		Active:     true,
	}
	unpaid := []models.Installment{
		{ID: uuid.New(), LoanID: loan.ID, Sequence: 23, Amount: decimal.NewFromFloat(443.21)},
		{ID: uuid.New(), LoanID: loan.ID, Sequence: 24, Amount: decimal.NewFromFloat(443.21)},
	}

	s.loanRepo.EXPECT().GetByNumber("222333444").Return(loan, nil)
	s.loanRepo.EXPECT().GetUnpaidInstallments(loan.ID).Return(unpaid, nil)
	s.loanRepo.EXPECT().ExecuteRateRevision(loan.ID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, newRate, newPayment decimal.Decimal) (int64, error) {
			s.True(decimal.NewFromFloat(6.0).Equal(newRate))
			s.True(newPayment.GreaterThan(decimal.Zero))
			return int64(2), nil
		})
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	revised, err := s.service.ReviseRate(&dto.ReviseRateRequest{
		LoanNumber: "222333444",
		NewRate:    decimal.NewFromFloat(6.0),
	})

	s.NoError(err)
	s.True(decimal.NewFromFloat(6.0).Equal(revised.AnnualRate))
	s.True(revised.MonthlyPayment.GreaterThan(decimal.Zero))
}

func (s *LoanServiceTestSuite) TestReviseRate_SettledLoan() {
	loan := &models.Loan{
		ID:      uuid.New(),
		Number:  "222333444",
		OwnerID: s.owner.ID,
		Active:  true,
	}
	s.loanRepo.EXPECT().GetByNumber("222333444").Return(loan, nil)
	s.loanRepo.EXPECT().GetUnpaidInstallments(loan.ID).Return([]models.Installment{}, nil)

	_, err := s.service.ReviseRate(&dto.ReviseRateRequest{
		LoanNumber: "222333444",
		NewRate:    decimal.NewFromFloat(6.0),
	})
	s.ErrorIs(err, models.ErrNoUnpaidInstallments)
}

func (s *LoanServiceTestSuite) TestSweepOverdue_FlagsAndAudits() {
	asOf := time.Now()
	s.loanRepo.EXPECT().MarkOverdueInstallments(asOf).Return(int64(3), nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	swept, err := s.service.SweepOverdue(asOf)
	s.NoError(err)
	s.Equal(int64(3), swept)
}

func (s *LoanServiceTestSuite) TestSweepOverdue_NothingDue() {
	asOf := time.Now()
	s.loanRepo.EXPECT().MarkOverdueInstallments(asOf).Return(int64(0), nil)

	swept, err := s.service.SweepOverdue(asOf)
	s.NoError(err)
	s.Zero(swept)
}

func (s *LoanServiceTestSuite) TestGetLoanByNumber_NotFound() {
	s.loanRepo.EXPECT().GetByNumber("222333444").Return(nil, repositories.ErrLoanNotFound)

	_, err := s.service.GetLoanByNumber("222333444")
	s.ErrorIs(err, services.ErrLoanNotFound)
}
