package battle

// Stat derivation constants (maximal IVs, zero EVs, neutral nature)
const (
	DefaultBaseStat = 50
	perfectIV       = 31
	MinLevel        = 1
	MaxLevel        = 100
	DefaultLevel    = 50
)

// Damage formula constants
const (
	damageDivisor = 50
	damageFlat    = 2
)

// pcgStreamSalt decorrelates the two PCG words derived from a single seed
const pcgStreamSalt = 0x9e3779b97f4a7c15

// Neutral values for one-shot modifiers
const (
	neutralShield = 1.0
	neutralBoost  = 1.0
)

// Trait keys
const (
	TraitLastStand = "last-stand"
	TraitMomentum  = "momentum"
	TraitWildLuck  = "wild-luck"
)

// UndiscoveredTraitName masks a trait until it has been revealed once
const UndiscoveredTraitName = "???"

// Trait owner roles
const (
	RoleAttacker = "attacker"
	RoleDefender = "defender"
)

// Log messages
const (
	LogMsgBattleStarted       = "Battle started"
	LogMsgBattleFinished      = "Battle finished"
	LogMsgTraitAssigned       = "Secret trait assigned"
	LogMsgTraitTriggered      = "Secret trait triggered"
	LogMsgDiscoveryLookupFail = "Failed to read secret discovery state"
	LogMsgDiscoveryMarkFail   = "Failed to persist secret discovery"
	LogMsgConfigLoaded        = "Battle config loaded"
)

// Error context prefixes
const (
	ErrContextReadConfig     = "failed to read battle config"
	ErrContextParseConfig    = "failed to parse battle config"
	ErrContextValidateConfig = "battle config failed schema validation"
	ErrContextStartBattle    = "failed to start battle"
)
