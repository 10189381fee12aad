package database

import "time"

// Pool defaults
const (
	DefaultMinConnections    = 2
	DefaultConnectAttempts   = 5
	DefaultConnectRetryDelay = 500 * time.Millisecond
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToInitMigrations  = "failed to initialise migrations"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToReadStatus      = "failed to read migration status"
)

const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgDatabaseNotReady                = "Database not ready, retrying"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationsUpToDate              = "Database schema is up to date"
)
