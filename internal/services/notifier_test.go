package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bancore/internal/services"
	"bancore/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/time/rate"
)

type NotifierTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	sender  *service_mocks.MockNotificationSenderInterface
	breaker *service_mocks.MockCircuitBreakerInterface
	metrics *service_mocks.MockMetricsRecorderInterface
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

func (s *NotifierTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.sender = service_mocks.NewMockNotificationSenderInterface(s.ctrl)
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
}

func (s *NotifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NotifierTestSuite) newNotifier(limiter *rate.Limiter) services.NotifierInterface {
	return services.NewThrottledNotifier(
		s.sender,
		limiter,
		s.breaker,
		s.metrics,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *NotifierTestSuite) notification() services.Notification {
	return services.Notification{
		Recipient: "ada@example.com",
		Kind:      services.NotifyKindDeposit,
		Amount:    decimal.NewFromFloat(100.00),
		Reference: "123456789",
	}
}

func (s *NotifierTestSuite) TestNotify_Delivers() {
	notifier := s.newNotifier(rate.NewLimiter(rate.Inf, 1))

	s.breaker.EXPECT().IsOpen().Return(false)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n services.Notification) error {
			s.Equal("ada@example.com", n.Recipient)
			s.False(n.OccurredAt.IsZero())
			return nil
		})
	s.breaker.EXPECT().RecordSuccess()
	s.metrics.EXPECT().IncrementCounter("notification.sent", nil)

	notifier.Notify(s.ctx, s.notification())
}

func (s *NotifierTestSuite) TestNotify_ThrottledWhenBudgetSpent() {
	notifier := s.newNotifier(rate.NewLimiter(rate.Every(time.Hour), 1))

	s.breaker.EXPECT().IsOpen().Return(false)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	s.breaker.EXPECT().RecordSuccess()
	s.metrics.EXPECT().IncrementCounter("notification.sent", nil)
	notifier.Notify(s.ctx, s.notification())

	// the single burst token is gone; delivery is skipped, not queued
	s.metrics.EXPECT().IncrementCounter("notification.throttled", nil)
	notifier.Notify(s.ctx, s.notification())
}

func (s *NotifierTestSuite) TestNotify_SkippedWhileBreakerOpen() {
	notifier := s.newNotifier(rate.NewLimiter(rate.Inf, 1))

	s.breaker.EXPECT().IsOpen().Return(true)
	s.metrics.EXPECT().IncrementCounter("circuit_breaker.open", map[string]string{"service": "notification"})

	notifier.Notify(s.ctx, s.notification())
}

func (s *NotifierTestSuite) TestNotify_DeliveryFailureIsSwallowed() {
	notifier := s.newNotifier(rate.NewLimiter(rate.Inf, 1))

	s.breaker.EXPECT().IsOpen().Return(false)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	s.breaker.EXPECT().RecordFailure()
	s.metrics.EXPECT().IncrementCounter("notification.failed", nil)

	notifier.Notify(s.ctx, s.notification())
}
