package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Battle metric names
const (
	MetricNameBattlesStarted    = "battles_started_total"
	MetricNameBattlesCompleted  = "battles_completed_total"
	MetricNameBattleTurns       = "battle_turns"
	MetricNameDamageDealt       = "battle_damage_dealt_total"
	MetricNameKnockouts         = "battle_knockouts_total"
	MetricNameSecretsDiscovered = "secrets_discovered_total"
	MetricNameActiveMatches     = "matches_active"
)

// Creature data metric names
const (
	MetricNamePokeAPIRequests  = "pokeapi_requests_total"
	MetricNamePokeAPIDuration  = "pokeapi_request_duration_seconds"
	MetricNamePokeAPICacheHits = "pokeapi_cache_hits_total"
	MetricNamePokeAPICacheSize = "pokeapi_cache_entries"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Battle metric help text
const (
	HelpTextBattlesStarted    = "Total number of battles started"
	HelpTextBattlesCompleted  = "Total number of battles completed, by outcome"
	HelpTextBattleTurns       = "Number of turns a completed battle took"
	HelpTextDamageDealt       = "Total damage dealt, by side"
	HelpTextKnockouts         = "Total knockouts, by side"
	HelpTextSecretsDiscovered = "Total number of secret traits discovered"
	HelpTextActiveMatches     = "Interactive matches started and not yet finished, sampled by the maintenance job"
)

// Creature data help text
const (
	HelpTextPokeAPIRequests  = "Total number of creature data provider requests, by resource and result"
	HelpTextPokeAPIDuration  = "Creature data provider request latency in seconds"
	HelpTextPokeAPICacheHits = "Total number of creature data lookups served from cache"
	HelpTextPokeAPICacheSize = "Creature data responses currently cached, by cache"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelOutcome  = "outcome"
	LabelSide     = "side"
	LabelTrait    = "trait"
	LabelResource = "resource"
	LabelResult   = "result"
	LabelCache    = "cache"
)

// Outcome label values
const (
	OutcomeRed       = "red"
	OutcomeBlue      = "blue"
	OutcomeDraw      = "draw"
	OutcomeTruncated = "truncated"
)

// Provider result label values
const (
	ResultOK        = "ok"
	ResultNotFound  = "not_found"
	ResultRetryable = "retryable"
	ResultError     = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TurnBuckets covers battles from a single knockout up to the turn backstop.
var TurnBuckets = []float64{1, 5, 10, 20, 30, 50, 75, 100, 200, 500}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
