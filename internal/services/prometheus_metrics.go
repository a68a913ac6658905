package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	settlementsTotal      *prometheus.CounterVec
	settlementDuration    prometheus.Histogram
	settlementAmount      prometheus.Histogram
	commitConflictRetries *prometheus.CounterVec
	journalEntriesTotal   *prometheus.CounterVec
	cardAuthorizations    *prometheus.CounterVec
	loanInstallmentsPaid  prometheus.Counter
	loansOriginatedTotal  prometheus.Counter
	overdueSweptTotal     prometheus.Counter
	accountsOpenedTotal   *prometheus.CounterVec
	accountsClosedTotal   prometheus.Counter
	cardsIssuedTotal      prometheus.Counter
	notificationsTotal    *prometheus.CounterVec
	circuitBreakerState   *prometheus.GaugeVec
	outstandingSystemDebt prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		settlementsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_operations_total",
				Help: "Total number of settlement operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		settlementDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "settlement_duration_milliseconds",
				Help:    "Settlement operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		settlementAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "settlement_amount",
				Help:    "Settled amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		commitConflictRetries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_commit_conflict_retries_total",
				Help: "Total number of bounded retries after store commit conflicts",
			},
			[]string{"operation"},
		),
		journalEntriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "journal_entries_total",
				Help: "Total number of journal entries written by direction",
			},
			[]string{"direction"},
		),
		cardAuthorizations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "card_authorizations_total",
				Help: "Total number of card authorizations by status",
			},
			[]string{"status"},
		),
		loanInstallmentsPaid: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loan_installments_paid_total",
				Help: "Total number of loan installments settled",
			},
		),
		loansOriginatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loans_originated_total",
				Help: "Total number of loans originated",
			},
		),
		overdueSweptTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "overdue_installments_swept_total",
				Help: "Total number of installments flagged overdue by the sweep",
			},
		),
		accountsOpenedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_opened_total",
				Help: "Total number of savings accounts opened by kind",
			},
			[]string{"kind"},
		),
		accountsClosedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "accounts_closed_total",
				Help: "Total number of savings accounts closed",
			},
		),
		cardsIssuedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cards_issued_total",
				Help: "Total number of credit cards issued",
			},
		),
		notificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Total number of settlement notifications by status",
			},
			[]string{"status"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		outstandingSystemDebt: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "outstanding_system_debt",
				Help: "System-wide outstanding debt across loans and cards",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case "settlement.completed":
		m.settlementsTotal.WithLabelValues(operation, "success").Inc()
	case "settlement.failed":
		m.settlementsTotal.WithLabelValues(operation, "failed").Inc()
	case "settlement.commit_conflict":
		m.commitConflictRetries.WithLabelValues(operation).Inc()
	case "journal.entry":
		if direction := tags["direction"]; direction != "" {
			m.journalEntriesTotal.WithLabelValues(direction).Inc()
		}
	case "card.authorization":
		if status != "" {
			m.cardAuthorizations.WithLabelValues(status).Inc()
		}
	case "loan.installments_paid":
		m.loanInstallmentsPaid.Inc()
	case "loan.originated":
		m.loansOriginatedTotal.Inc()
	case "account.opened":
		kind := tags["kind"]
		if kind == "" {
			kind = "secondary"
		}
		m.accountsOpenedTotal.WithLabelValues(kind).Inc()
	case "account.closed":
		m.accountsClosedTotal.Inc()
	case "card.issued":
		m.cardsIssuedTotal.Inc()
	case "notification.sent":
		m.notificationsTotal.WithLabelValues("sent").Inc()
	case "notification.failed":
		m.notificationsTotal.WithLabelValues("failed").Inc()
	case "notification.throttled":
		m.notificationsTotal.WithLabelValues("throttled").Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "settlement.duration":
		m.settlementDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "settlement.amount":
		m.settlementAmount.Observe(value)
	case "system.outstanding_debt":
		m.outstandingSystemDebt.Set(value)
	case "circuit_breaker.state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	case "overdue.swept":
		m.overdueSweptTotal.Add(value)
	}
}
