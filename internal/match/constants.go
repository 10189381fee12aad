package match

import "time"

// Defaults applied when Config fields are left zero
const (
	DefaultMaxTurns   = 500
	DefaultTTL        = 30 * time.Minute
	DefaultCapacity   = 1024
	DefaultWorkers    = 4
	DefaultBatchLimit = 1000
	fetchConcurrency  = 4
)

// Log messages
const (
	LogMsgMatchStarted   = "Match started"
	LogMsgMatchFinished  = "Match finished"
	LogMsgMatchTruncated = "Match hit the turn backstop"
	LogMsgMatchEvicted   = "Match evicted before finishing"
	LogMsgPublishFailed  = "Failed to publish battle event"
	LogMsgBatchCompleted = "Batch simulation completed"
	LogMsgTeamLoaded     = "Team loaded"
)

// Error contexts
const (
	ErrContextLoadTeam    = "failed to load team"
	ErrContextAdvance     = "failed to advance match"
	ErrContextBatch       = "failed to run batch simulation"
	ErrMsgEmptyTeam       = "team needs at least one creature or random slot"
	ErrMsgBatchSize       = "batch size must be between 1 and %d"
	ErrMsgTeamTooLarge    = "team has %d creatures"
	ErrMsgNegativeRandoms = "random slot count must not be negative"
)
