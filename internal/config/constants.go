package config

import "time"

const (
	// Configuration file paths
	ConfigPathBattle = "configs/battle.json"
)

// Defaults
const (
	DefaultServiceName = "battlesim"
	DefaultAPIURL      = "http://localhost:8080"
	DefaultPokeAPIURL  = "https://pokeapi.co/api/v2"
	DefaultLogDir      = "logs"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultPokeAPITimeout = 10 * time.Second
	DefaultCacheSize      = 2048
	DefaultCacheTTL       = 30 * 24 * time.Hour
	DefaultCreatureTTL    = 180 * 24 * time.Hour

	DefaultLevel         = 50
	DefaultMaxTurns      = 500
	DefaultMatchTTL      = 30 * time.Minute
	DefaultMatchCapacity = 1024
	DefaultSimWorkers    = 4

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
