package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"bancore/internal/dto"
	apperrors "bancore/internal/errors"
	"bancore/internal/models"
	"bancore/internal/services"
	"bancore/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SampleDataGeneratorTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	ledger     *service_mocks.MockLedgerServiceInterface
	cards      *service_mocks.MockCardServiceInterface
	loans      *service_mocks.MockLoanServiceInterface
	settlement *service_mocks.MockSettlementServiceInterface
	generator  services.SampleDataGeneratorInterface
}

func TestSampleDataGeneratorSuite(t *testing.T) {
	suite.Run(t, new(SampleDataGeneratorTestSuite))
}

func (s *SampleDataGeneratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.ledger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.cards = service_mocks.NewMockCardServiceInterface(s.ctrl)
	s.loans = service_mocks.NewMockLoanServiceInterface(s.ctrl)
	s.settlement = service_mocks.NewMockSettlementServiceInterface(s.ctrl)
	s.generator = services.NewSampleDataGenerator(
		s.ledger, s.cards, s.loans, s.settlement,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *SampleDataGeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SampleDataGeneratorTestSuite) newOwnerAndAccount() (*models.Owner, *models.Account) {
	ownerID := uuid.New()
	owner := &models.Owner{ID: ownerID}
	account := &models.Account{ID: uuid.New(), OwnerID: ownerID, Number: "123456789", Active: true}
	return owner, account
}

func (s *SampleDataGeneratorTestSuite) TestGenerate_SeedsFullOwnerPortfolio() {
	owner, account := s.newOwnerAndAccount()
	card := &models.CreditCard{ID: uuid.New(), OwnerID: owner.ID, Number: "4111111111111111"}
	loan := &models.Loan{
		ID:             uuid.New(),
		Number:         "987654321",
		MonthlyPayment: decimal.RequireFromString("443.21"),
	}

	s.ledger.EXPECT().OpenPrincipal(gomock.Any()).DoAndReturn(
		func(req *dto.OpenPrincipalRequest) (*models.Owner, *models.Account, error) {
			s.NotEmpty(req.FirstName)
			s.NotEmpty(req.LastName)
			s.NotEmpty(req.Email)
			s.True(req.InitialBalance.GreaterThan(decimal.Zero))
			return owner, account, nil
		})
	s.cards.EXPECT().IssueCard(gomock.Any()).DoAndReturn(
		func(req *dto.IssueCardRequest) (*models.CreditCard, error) {
			s.Equal(owner.ID, req.OwnerID)
			s.Len(req.VerificationCode, 4)
			return card, nil
		})

	s.settlement.EXPECT().Deposit(gomock.Any(), gomock.Any()).
		Return(dto.Succeed("deposit settled", nil)).MinTimes(1).MaxTimes(3)
	s.settlement.EXPECT().CaptureMerchantCharge(gomock.Any(), gomock.Any()).
		Return(dto.Succeed("charge approved", nil)).MinTimes(1).MaxTimes(4)
	s.settlement.EXPECT().PayCard(gomock.Any(), gomock.Any()).
		Return(dto.Succeed("card payment settled", nil))

	// the first owner always carries a loan
	s.loans.EXPECT().Originate(gomock.Any()).DoAndReturn(
		func(req *dto.OriginateLoanRequest) (*models.Loan, error) {
			s.Equal(owner.ID, req.OwnerID)
			s.Contains([]int{12, 24, 36}, req.TermMonths)
			return loan, nil
		})
	s.settlement.EXPECT().PayLoan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *dto.PayLoanRequest) *dto.Outcome {
			s.Equal(loan.Number, req.LoanNumber)
			s.True(loan.MonthlyPayment.Equal(req.Amount))
			return dto.Succeed("loan payment settled", nil)
		})

	s.NoError(s.generator.Generate(s.ctx, 1))
}

func (s *SampleDataGeneratorTestSuite) TestGenerate_BusinessRejectionsAreTolerated() {
	owner, account := s.newOwnerAndAccount()
	card := &models.CreditCard{ID: uuid.New(), OwnerID: owner.ID, Number: "4111111111111111"}

	s.ledger.EXPECT().OpenPrincipal(gomock.Any()).Return(owner, account, nil)
	s.cards.EXPECT().IssueCard(gomock.Any()).Return(card, nil)

	s.settlement.EXPECT().Deposit(gomock.Any(), gomock.Any()).
		Return(dto.Succeed("deposit settled", nil)).AnyTimes()
	s.settlement.EXPECT().CaptureMerchantCharge(gomock.Any(), gomock.Any()).
		Return(dto.Fail(apperrors.CardInsufficientCredit)).AnyTimes()
	s.settlement.EXPECT().PayCard(gomock.Any(), gomock.Any()).
		Return(dto.Fail(apperrors.CardNoOutstandingDebt))
	s.loans.EXPECT().Originate(gomock.Any()).Return(nil, errors.New("owner is over the debt baseline"))

	s.NoError(s.generator.Generate(s.ctx, 1))
}

func (s *SampleDataGeneratorTestSuite) TestGenerate_OnboardingFailureAborts() {
	s.ledger.EXPECT().OpenPrincipal(gomock.Any()).Return(nil, nil, errors.New("store unavailable"))

	err := s.generator.Generate(s.ctx, 3)
	s.ErrorContains(err, "failed to seed owner 0")
}
