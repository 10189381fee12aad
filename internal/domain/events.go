package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "battle.completed")
const (
	// EventTypeBattleStarted is published when a match session is created
	EventTypeBattleStarted = "battle.started"

	// EventTypeBattleCompleted is published when a match reaches a terminal state
	EventTypeBattleCompleted = "battle.completed"

	// EventTypeSecretDiscovered is published the first time a secret trait fires
	EventTypeSecretDiscovered = "secret.discovered"
)
