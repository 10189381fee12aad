package logger

// Level names accepted in LOG_LEVEL
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Output formats accepted in LOG_FORMAT
const (
	FormatJSON = "json"
	FormatText = "text"
)

// DefaultServiceName tags records when no service name is configured
const DefaultServiceName = "battlesim"

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyMatchID     = "match_id"
)
