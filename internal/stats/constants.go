package stats

// ============================================================================
// Query Limits
// ============================================================================

// DefaultLeaderboardLimit is the number of entries returned when no limit is given
const DefaultLeaderboardLimit = 10

// MaxLeaderboardLimit caps leaderboard queries
const MaxLeaderboardLimit = 100

// ============================================================================
// Error Messages
// ============================================================================

// Validation error messages
const (
	ErrMsgMatchIDRequired = "match ID is required"
)

// Database operation error messages
const (
	ErrMsgRecordBattleFailed   = "failed to record battle: %w"
	ErrMsgGetMatchStatsFailed  = "failed to get match stats: %w"
	ErrMsgGetLeaderboardFailed = "failed to get leaderboard: %w"
	ErrMsgDecodePayloadFailed  = "failed to decode battle completed payload: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

// Service operation log messages
const (
	LogMsgBattleRecorded        = "Battle recorded"
	LogMsgSummaryWithoutMatchID = "Completed battle has no match ID, not recorded"
	LogMsgRetrievedMatchStats   = "Retrieved match stats"
	LogMsgRetrievedLeaderboard  = "Retrieved leaderboard"
)

// Error log messages
const (
	LogMsgFailedToRecordBattle   = "Failed to record battle"
	LogMsgFailedToGetLeaderboard = "Failed to get leaderboard"
)
