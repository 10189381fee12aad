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

// Battle Metrics
var (
	BattlesStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBattlesStarted,
			Help: HelpTextBattlesStarted,
		},
	)

	BattlesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesCompleted,
			Help: HelpTextBattlesCompleted,
		},
		[]string{LabelOutcome},
	)

	BattleTurns = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBattleTurns,
			Help:    HelpTextBattleTurns,
			Buckets: TurnBuckets,
		},
	)

	DamageDealt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDamageDealt,
			Help: HelpTextDamageDealt,
		},
		[]string{LabelSide},
	)

	Knockouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameKnockouts,
			Help: HelpTextKnockouts,
		},
		[]string{LabelSide},
	)

	SecretsDiscovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecretsDiscovered,
			Help: HelpTextSecretsDiscovered,
		},
		[]string{LabelTrait},
	)

	ActiveMatches = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveMatches,
			Help: HelpTextActiveMatches,
		},
	)
)

// Creature Data Metrics
var (
	PokeAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePokeAPIRequests,
			Help: HelpTextPokeAPIRequests,
		},
		[]string{LabelResource, LabelResult},
	)

	PokeAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePokeAPIDuration,
			Help:    HelpTextPokeAPIDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelResource},
	)

	PokeAPICacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePokeAPICacheHits,
			Help: HelpTextPokeAPICacheHits,
		},
		[]string{LabelResource},
	)

	PokeAPICacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNamePokeAPICacheSize,
			Help: HelpTextPokeAPICacheSize,
		},
		[]string{LabelCache},
	)
)
