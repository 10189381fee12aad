package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Creature data errors
	ErrMsgCreatureNotFound = "creature not found"
	ErrMsgMoveNotFound     = "move not found"
	ErrMsgRetryableFetch   = "retryable fetch error"

	// Battle errors
	ErrMsgInvalidLevel = "level must be between 1 and 100"
	ErrMsgTeamSize     = "team must have between 1 and 6 combatants"
	ErrMsgBattleOver   = "battle is already over"
	ErrMsgNoMoves      = "combatant has no moves"

	// Match errors
	ErrMsgMatchNotFound = "match not found"

	// Storage errors
	ErrMsgDatabaseError = "database error"

	// Config errors
	ErrMsgInvalidConfig = "invalid battle config"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrCreatureNotFound = errors.New(ErrMsgCreatureNotFound)
	ErrMoveNotFound     = errors.New(ErrMsgMoveNotFound)

	// ErrRetryableFetch is the sentinel matched by errors.Is for any *RetryableFetchError.
	ErrRetryableFetch = errors.New(ErrMsgRetryableFetch)

	ErrInvalidLevel = errors.New(ErrMsgInvalidLevel)
	ErrTeamSize     = errors.New(ErrMsgTeamSize)
	ErrBattleOver   = errors.New(ErrMsgBattleOver)
	ErrNoMoves      = errors.New(ErrMsgNoMoves)

	ErrMatchNotFound = errors.New(ErrMsgMatchNotFound)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)

// RetryableFetchError reports a transient data-provider failure (transport error,
// timeout or 5xx). The engine never retries; retry policy belongs to the caller.
type RetryableFetchError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *RetryableFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s returned status %d", ErrMsgRetryableFetch, e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", ErrMsgRetryableFetch, e.Resource, e.Err)
}

func (e *RetryableFetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrRetryableFetch) match any RetryableFetchError.
func (e *RetryableFetchError) Is(target error) bool {
	return target == ErrRetryableFetch
}

// IsRetryable reports whether err is a transient fetch failure worth retrying.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRetryableFetch)
}
