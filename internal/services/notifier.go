package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Notification template kinds
const (
	NotifyKindDeposit       = "deposit"
	NotifyKindWithdrawal    = "withdrawal"
	NotifyKindTransferSent  = "transfer_sent"
	NotifyKindTransferIn    = "transfer_received"
	NotifyKindCardPayment   = "card_payment"
	NotifyKindCardCharge    = "card_charge"
	NotifyKindCashAdvance   = "cash_advance"
	NotifyKindLoanPayment   = "loan_payment"
	NotifyKindLoanDisbursed = "loan_disbursed"
	NotifyKindAccountOpened = "account_opened"
	NotifyKindAccountClosed = "account_closed"
)

// ThrottledNotifier dispatches notifications strictly after the financial
// commit. It is fire-and-forget: delivery is rate limited, guarded by a
// circuit breaker, and every failure mode is logged and swallowed.
type ThrottledNotifier struct {
	sender  NotificationSenderInterface
	limiter *rate.Limiter
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewThrottledNotifier(
	sender NotificationSenderInterface,
	limiter *rate.Limiter,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) NotifierInterface {
	return &ThrottledNotifier{
		sender:  sender,
		limiter: limiter,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

func (n *ThrottledNotifier) Notify(ctx context.Context, notification Notification) {
	notification = stampNotification(notification)

	if !n.limiter.Allow() {
		n.metrics.IncrementCounter("notification.throttled", nil)
		n.logger.WarnContext(ctx, "notification throttled",
			slog.String("kind", notification.Kind),
			slog.String("recipient", notification.Recipient),
		)
		return
	}

	if n.breaker.IsOpen() {
		n.metrics.IncrementCounter("circuit_breaker.open", map[string]string{
			"service": "notification",
		})
		n.logger.WarnContext(ctx, "notification skipped, circuit breaker open",
			slog.String("kind", notification.Kind),
		)
		return
	}

	if err := n.sender.Send(ctx, notification); err != nil {
		n.breaker.RecordFailure()
		n.metrics.IncrementCounter("notification.failed", nil)
		n.logger.WarnContext(ctx, "notification delivery failed",
			slog.String("kind", notification.Kind),
			slog.String("recipient", notification.Recipient),
			slog.String("error", err.Error()),
		)
		return
	}

	n.breaker.RecordSuccess()
	n.metrics.IncrementCounter("notification.sent", nil)
}

// LogNotificationSender is the development stand-in for the external
// delivery channel: it writes the notification to the structured log.
type LogNotificationSender struct {
	logger *slog.Logger
}

func NewLogNotificationSender(logger *slog.Logger) NotificationSenderInterface {
	return &LogNotificationSender{logger: logger}
}

func (s *LogNotificationSender) Send(ctx context.Context, n Notification) error {
	s.logger.InfoContext(ctx, "notification dispatched",
		slog.String("recipient", n.Recipient),
		slog.String("kind", n.Kind),
		slog.String("amount", n.Amount.String()),
		slog.String("reference", n.Reference),
		slog.Time("occurred_at", n.OccurredAt),
	)
	return nil
}

// ensure OccurredAt defaults are sane for senders that render timestamps
func stampNotification(n Notification) Notification {
	if n.OccurredAt.IsZero() {
		n.OccurredAt = time.Now()
	}
	return n
}
