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
		[]string{LabelMethod, LabelRoute, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelRoute},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Ledger Metrics
var (
	CrownsCredited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCrownsCredited,
			Help: HelpTextCrownsCredited,
		},
		[]string{LabelSource},
	)

	CrownsDebited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCrownsDebited,
			Help: HelpTextCrownsDebited,
		},
		[]string{LabelSource},
	)

	Transfers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTransfers,
			Help: HelpTextTransfers,
		},
		[]string{LabelResult},
	)

	MessagesRewarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMessagesRewarded,
			Help: HelpTextMessagesRewarded,
		},
	)
)

// Shop and Catalog Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	CatalogItemsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogItemsImported,
			Help: HelpTextCatalogItemsImported,
		},
	)

	CatalogImportFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogImportFailures,
			Help: HelpTextCatalogImportFailures,
		},
	)
)

// Payout Metrics
var (
	PayoutRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayoutRuns,
			Help: HelpTextPayoutRuns,
		},
		[]string{LabelResult},
	)

	PayoutMembersCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePayoutMembersCredited,
			Help: HelpTextPayoutMembersCredited,
		},
	)

	PayoutFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePayoutFailures,
			Help: HelpTextPayoutFailures,
		},
	)

	PayoutLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePayoutLastSuccess,
			Help: HelpTextPayoutLastSuccess,
		},
	)
)

// Chat command metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelCommand, LabelResult},
	)
)
