package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept alongside the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting battle service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Storage and Services
// =============================================================================

const (
	LogMsgUsingMemoryStorage   = "No DB_HOST configured, keeping discoveries and stats in memory"
	LogMsgUsingPostgresStorage = "Using PostgreSQL storage"
	LogMsgBattleConfigLoaded   = "Battle config loaded"
	LogMsgServicesInitialized  = "Services initialized"

	ErrMsgFailedLoadBattleConfig = "failed to load battle config"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStatsHandlerRegistered     = "Stats event handler registered"
	LogMsgSecretDiscovered           = "Secret trait discovered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)

// =============================================================================
// Maintenance Jobs
// =============================================================================

const (
	MaintenanceWorkers     = 1
	GaugeInterval          = 30 * time.Second
	StatsHeartbeatInterval = 10 * time.Minute

	JobNameGauges         = "gauges"
	JobNameStatsHeartbeat = "stats_heartbeat"

	CacheLabelList = "list"
	CacheLabelData = "data"

	LogMsgStatsHeartbeat      = "Battle totals"
	LogMsgStoppingMaintenance = "Stopping maintenance jobs..."
)
