package pokeapi

import "time"

// Cache schema versioning
const (
	// CacheSchemaVersion is bumped whenever the cached payload shape changes,
	// which invalidates every entry written under the old version.
	CacheSchemaVersion = "1.0"
)

// Provider defaults
const (
	DefaultBaseURL     = "https://pokeapi.co/api/v2"
	DefaultTimeout     = 10 * time.Second
	DefaultCacheSize   = 2048
	DefaultListTTL     = 30 * 24 * time.Hour
	DefaultResourceTTL = 180 * 24 * time.Hour
)

// Move selection policy
const (
	// MoveScanLimit caps how many of a creature's learnable moves are inspected
	MoveScanLimit = 60

	// defaultMoveType applies when a move reports no type
	defaultMoveType = "normal"

	// defaultMovePower replaces a reported power of zero
	defaultMovePower = 40

	// defaultMoveAccuracy applies when a move reports no accuracy
	defaultMoveAccuracy = 100
)

// Random creature selection
const (
	MinRandomID = 1
	MaxRandomID = 1010
)

// Dex listing bounds
const (
	DefaultPageLimit = 200
	MaxPageLimit     = 1000
)

// Resource labels for metrics, cache keys and errors
const (
	ResourceCreature = "pokemon"
	ResourceMove     = "move"
	ResourceList     = "pokemon-list"
)

// Sprite variant preferred over the default front sprite
const officialArtworkKey = "official-artwork"

// Log messages
const (
	LogMsgCacheHit        = "Creature data served from cache"
	LogMsgFetching        = "Fetching creature data"
	LogMsgFetchFailed     = "Creature data fetch failed"
	LogMsgMoveSkipped     = "Skipping move that could not be loaded"
	LogMsgTemplateLoaded  = "Combatant template loaded"
	LogMsgFallbackTackle  = "No damaging moves found, using fallback"
)

// Error context prefixes
const (
	ErrContextBuildRequest = "failed to build request"
	ErrContextDecode       = "failed to decode response"
	ErrContextLoadMoves    = "failed to load moves"
	ErrContextDeriveStats  = "failed to derive stats"
	ErrContextEmptyName    = "creature identifier is empty"
)
