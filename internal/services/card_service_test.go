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

type CardServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	cardRepo   *repository_mocks.MockCardRepositoryInterface
	chargeRepo *repository_mocks.MockChargeRepositoryInterface
	ownerRepo  *repository_mocks.MockOwnerRepositoryInterface
	auditRepo  *repository_mocks.MockAuditLogRepositoryInterface
	verifier   *service_mocks.MockVerifierInterface
	metrics    *service_mocks.MockMetricsRecorderInterface
	service    services.CardServiceInterface
	owner      *models.Owner
	card       *models.CreditCard
}

func TestCardServiceSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}

func (s *CardServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.cardRepo = repository_mocks.NewMockCardRepositoryInterface(s.ctrl)
	s.chargeRepo = repository_mocks.NewMockChargeRepositoryInterface(s.ctrl)
	s.ownerRepo = repository_mocks.NewMockOwnerRepositoryInterface(s.ctrl)
	s.auditRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.verifier = service_mocks.NewMockVerifierInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewCardService(
		s.cardRepo,
		s.chargeRepo,
		s.ownerRepo,
		s.auditRepo,
		s.verifier,
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
	s.card = &models.CreditCard{
		ID:               uuid.New(),
		Number:           "4111111111111111",
		OwnerID:          s.owner.ID,
		Limit:            decimal.NewFromFloat(3000.00),
		Debt:             decimal.Zero,
		VerificationHash: "hashed",
		ExpiresAt:        time.Now().AddDate(1, 0, 0),
		Active:           true,
	}
}

func (s *CardServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CardServiceTestSuite) TestIssueCard_Success() {
	s.ownerRepo.EXPECT().GetByID(s.owner.ID).Return(s.owner, nil)
	s.cardRepo.EXPECT().GenerateUniqueNumber().Return("4111111111111111", nil)
	s.verifier.EXPECT().Hash("1234").Return("hashed", nil)
	s.cardRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(card *models.CreditCard) error {
		card.ID = uuid.New()
		return nil
	})
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	card, err := s.service.IssueCard(&dto.IssueCardRequest{
		OwnerID:          s.owner.ID,
		Limit:            decimal.NewFromFloat(3000.00),
		VerificationCode: "1234",
	})

	s.NoError(err)
	s.Require().NotNil(card)
	s.Equal("4111111111111111", card.Number)
	s.Equal("hashed", card.VerificationHash)
	s.True(card.Debt.IsZero())
	s.True(card.Active)
	s.True(card.ExpiresAt.After(time.Now().AddDate(3, 11, 0)))
}

func (s *CardServiceTestSuite) TestIssueCard_InactiveOwner() {
	s.owner.Active = false
	s.ownerRepo.EXPECT().GetByID(s.owner.ID).Return(s.owner, nil)

	_, err := s.service.IssueCard(&dto.IssueCardRequest{
		OwnerID:          s.owner.ID,
		Limit:            decimal.NewFromFloat(1000.00),
		VerificationCode: "1234",
	})
	s.ErrorIs(err, services.ErrOwnerInactive)
}

func (s *CardServiceTestSuite) TestCancelCard_OutstandingDebtRefused() {
	s.card.Debt = decimal.NewFromFloat(120.00)
	s.cardRepo.EXPECT().GetByNumber("4111111111111111").Return(s.card, nil)

	err := s.service.CancelCard("4111111111111111")
	s.ErrorIs(err, models.ErrCardOutstandingDebt)
}

func (s *CardServiceTestSuite) TestCancelCard_Success() {
	s.cardRepo.EXPECT().GetByNumber("4111111111111111").Return(s.card, nil)
	s.cardRepo.EXPECT().Update(s.card).Return(nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	err := s.service.CancelCard("4111111111111111")
	s.NoError(err)
	s.False(s.card.Active)
}

func (s *CardServiceTestSuite) TestChangeLimit_BelowDebtRefused() {
	s.card.Debt = decimal.NewFromFloat(900.00)
	s.cardRepo.EXPECT().GetByNumber("4111111111111111").Return(s.card, nil)

	_, err := s.service.ChangeLimit(&dto.ChangeLimitRequest{
		CardNumber: "4111111111111111",
		NewLimit:   decimal.NewFromFloat(800.00),
	})
	s.ErrorIs(err, models.ErrLimitBelowDebt)
}

func (s *CardServiceTestSuite) TestChangeLimit_Success() {
	s.cardRepo.EXPECT().GetByNumber("4111111111111111").Return(s.card, nil)
	s.cardRepo.EXPECT().Update(s.card).Return(nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	card, err := s.service.ChangeLimit(&dto.ChangeLimitRequest{
		CardNumber: "4111111111111111",
		NewLimit:   decimal.NewFromFloat(5000.00),
	})
	s.NoError(err)
	s.True(decimal.NewFromFloat(5000.00).Equal(card.Limit))
}

func (s *CardServiceTestSuite) TestGetCardByNumber_NotFound() {
	s.cardRepo.EXPECT().GetByNumber("4111111111111111").Return(nil, repositories.ErrCardNotFound)

	_, err := s.service.GetCardByNumber("4111111111111111")
	s.ErrorIs(err, services.ErrCardNotFound)
}

func (s *CardServiceTestSuite) TestGetCharges_Paginated() {
	charges := []models.CardCharge{
		{ID: uuid.New(), CardID: s.card.ID, Amount: decimal.NewFromFloat(10.00), Status: models.ChargeStatusApproved},
	}
	s.chargeRepo.EXPECT().GetByCardID(s.card.ID, 0, 20).Return(charges, int64(1), nil)

	got, total, err := s.service.GetCharges(s.card.ID, 0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(got, 1)
}
