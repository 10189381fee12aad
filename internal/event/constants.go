package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// RetryQueueBufferSize bounds the events waiting for a retry
const RetryQueueBufferSize = 1000

// Dead letter file configuration
const (
	DeadLetterFilePermissions = 0644
	DeadLetterMaxLineBytes    = 1 << 20

	ErrMsgOpenDeadLetter     = "failed to open dead-letter file"
	ErrMsgParseDeadLetterFmt = "dead-letter line %d: %w"
)

// Log message constants
const (
	// Log messages for event publishing
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgEventDeadLettered     = "Event dead-lettered"
)

// ErrMsgHandlersFailedFmt wraps the joined handler errors of one Publish
const ErrMsgHandlersFailedFmt = "%d handler(s) failed for %s: %w"

// CalculateRetryDelay doubles baseDelay for every attempt after the first
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
