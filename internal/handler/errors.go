package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"

	// Operation names, used for logging and failure responses
	OpStartBattle    = "Start battle"
	OpAdvanceBattle  = "Advance battle"
	OpGetBattle      = "Get battle"
	OpSimulate       = "Simulate battle"
	OpGetSecrets     = "Get secrets"
	OpGetLeaderboard = "Get leaderboard"
	OpGetMatchStats  = "Get match stats"
	OpListCreatures  = "List creatures"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgMatchNotFound      = "Battle not found"
	ErrMsgCreatureNotFound   = "Creature not found"
	ErrMsgBattleOver         = "Battle is already over"
	ErrMsgTeamSize           = "Each team needs between 1 and 6 creatures"
	ErrMsgInvalidLevel       = "Level must be between 1 and 100"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgUpstreamError      = "Creature data is temporarily unavailable. Please try again later."
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode request"
	LogMsgRequestDecoded      = "Request decoded"
	LogMsgServiceError        = "Service call failed"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
)
