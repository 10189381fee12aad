package worker

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerPanic     = "Worker job panicked"
	LogMsgPoolStarted     = "Worker pool started"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// ErrMsgJobPanicFmt wraps a recovered panic as a job error
const ErrMsgJobPanicFmt = "job panicked: %v"

// DefaultQueueFactor sizes the job queue relative to the worker count when no size is given
const DefaultQueueFactor = 4
