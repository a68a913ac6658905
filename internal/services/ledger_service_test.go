package services_test

import (
	"io"
	"log/slog"
	"testing"

	"bancore/internal/dto"
	apperrors "bancore/internal/errors"
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

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ownerRepo   *repository_mocks.MockOwnerRepositoryInterface
	accountRepo *repository_mocks.MockAccountRepositoryInterface
	ledgerRepo  *repository_mocks.MockLedgerRepositoryInterface
	auditRepo   *repository_mocks.MockAuditLogRepositoryInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     services.LedgerServiceInterface
	owner       *models.Owner
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ownerRepo = repository_mocks.NewMockOwnerRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.ledgerRepo = repository_mocks.NewMockLedgerRepositoryInterface(s.ctrl)
	s.auditRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewLedgerService(
		s.ownerRepo,
		s.accountRepo,
		s.ledgerRepo,
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

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerServiceTestSuite) TestOpenPrincipal_WithOpeningBalance() {
	initial := decimal.NewFromFloat(500.00)
	entryID := uuid.New()

	s.ownerRepo.EXPECT().GetByEmail("ada@example.com").Return(nil, repositories.ErrOwnerNotFound)
	s.ownerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(owner *models.Owner) error {
		owner.ID = s.owner.ID
		return nil
	})
	s.accountRepo.EXPECT().GenerateUniqueNumber().Return("123456789", nil)
	s.accountRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(account *models.Account) error {
		account.ID = uuid.New()
		return nil
	})
	s.accountRepo.EXPECT().ApplyEntry(gomock.Any(), initial, models.EntryDirectionCredit, "initial deposit", "Ada Lovelace").
		Return(entryID, nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	owner, account, err := s.service.OpenPrincipal(&dto.OpenPrincipalRequest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		InitialBalance: initial,
	})

	s.NoError(err)
	s.Require().NotNil(owner)
	s.Require().NotNil(account)
	s.Equal("123456789", account.Number)
	s.True(account.Principal)
	s.True(account.Active)
	s.True(initial.Equal(account.Balance))
}

func (s *LedgerServiceTestSuite) TestOpenPrincipal_ZeroBalanceSkipsJournal() {
	s.ownerRepo.EXPECT().GetByEmail("ada@example.com").Return(nil, repositories.ErrOwnerNotFound)
	s.ownerRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.accountRepo.EXPECT().GenerateUniqueNumber().Return("123456789", nil)
	s.accountRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	_, account, err := s.service.OpenPrincipal(&dto.OpenPrincipalRequest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		InitialBalance: decimal.Zero,
	})

	s.NoError(err)
	s.True(account.Balance.IsZero())
}

func (s *LedgerServiceTestSuite) TestOpenPrincipal_DuplicateEmail() {
	s.ownerRepo.EXPECT().GetByEmail("ada@example.com").Return(s.owner, nil)

	_, _, err := s.service.OpenPrincipal(&dto.OpenPrincipalRequest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		InitialBalance: decimal.Zero,
	})
	s.ErrorIs(err, services.ErrEmailTaken)
}

func (s *LedgerServiceTestSuite) TestOpenPrincipal_InvalidEmail() {
	_, _, err := s.service.OpenPrincipal(&dto.OpenPrincipalRequest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "not-an-email",
		InitialBalance: decimal.Zero,
	})

	var failure *apperrors.Failure
	s.Require().ErrorAs(err, &failure)
	s.Equal(apperrors.ValidationGeneral, failure.Code)
}

func (s *LedgerServiceTestSuite) TestOpenSecondary_InactiveOwner() {
	s.owner.Active = false
	s.ownerRepo.EXPECT().GetByID(s.owner.ID).Return(s.owner, nil)

	_, err := s.service.OpenSecondary(&dto.OpenSecondaryRequest{
		OwnerID:        s.owner.ID,
		InitialBalance: decimal.Zero,
	})
	s.ErrorIs(err, services.ErrOwnerInactive)
}

func (s *LedgerServiceTestSuite) TestOpenSecondary_Success() {
	s.ownerRepo.EXPECT().GetByID(s.owner.ID).Return(s.owner, nil)
	s.accountRepo.EXPECT().GenerateUniqueNumber().Return("987654321", nil)
	s.accountRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	account, err := s.service.OpenSecondary(&dto.OpenSecondaryRequest{
		OwnerID:        s.owner.ID,
		InitialBalance: decimal.Zero,
	})

	s.NoError(err)
	s.False(account.Principal)
	s.Equal("987654321", account.Number)
}

func (s *LedgerServiceTestSuite) TestClose_SweepsRemainingBalance() {
	account := &models.Account{
		ID:      uuid.New(),
		Number:  "987654321",
		OwnerID: s.owner.ID,
		Active:  true,
	}
	swept := decimal.NewFromFloat(75.00)

	s.accountRepo.EXPECT().GetByNumber("987654321").Return(account, nil)
	s.accountRepo.EXPECT().ExecuteClose(account.ID).Return(swept, nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	got, err := s.service.Close("987654321")
	s.NoError(err)
	s.True(swept.Equal(got))
}

func (s *LedgerServiceTestSuite) TestClose_PrincipalRefused() {
	account := &models.Account{
		ID:        uuid.New(),
		Number:    "123456789",
		OwnerID:   s.owner.ID,
		Principal: true,
		Active:    true,
	}
	s.accountRepo.EXPECT().GetByNumber("123456789").Return(account, nil)
	s.accountRepo.EXPECT().ExecuteClose(account.ID).Return(decimal.Zero, repositories.ErrAccountIsPrincipal)

	_, err := s.service.Close("123456789")
	s.ErrorIs(err, repositories.ErrAccountIsPrincipal)
}

func (s *LedgerServiceTestSuite) TestGetAccountByNumber_NotFound() {
	s.accountRepo.EXPECT().GetByNumber("123456789").Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.GetAccountByNumber("123456789")
	s.ErrorIs(err, services.ErrAccountNotFound)
}
