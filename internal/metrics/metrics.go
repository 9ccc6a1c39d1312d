package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Transfers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTransfers,
			Help: HelpTextTransfers,
		},
		[]string{LabelKind},
	)

	ItemsMoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsMoved,
			Help: HelpTextItemsMoved,
		},
		[]string{LabelKind},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	ShopsOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShopsOpened,
			Help: HelpTextShopsOpened,
		},
	)

	ShopsClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShopsClosed,
			Help: HelpTextShopsClosed,
		},
		[]string{LabelReason},
	)

	ShopsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameShopsOpen,
			Help: HelpTextShopsOpen,
		},
	)

	ShopLifetime = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameShopLifetime,
			Help:    HelpTextShopLifetime,
			Buckets: ShopLifetimeBuckets,
		},
	)

	DocumentsPrinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDocumentsPrint,
			Help: HelpTextDocumentsPrint,
		},
	)

	PostsPrinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePostsPrinted,
			Help: HelpTextPostsPrinted,
		},
	)
)

// Command Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelCommand, LabelOutcome},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCommandDuration,
			Help:    HelpTextCommandDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelCommand},
	)
)

// ObserveCommand records one handled slash command.
func ObserveCommand(command string, seconds float64, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	CommandsTotal.WithLabelValues(command, outcome).Inc()
	CommandDuration.WithLabelValues(command).Observe(seconds)
}
