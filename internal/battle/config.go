package battle

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/validation"
)

//go:embed battle_config.schema.json
var configSchema []byte

const configSchemaName = "battle_config.schema.json"

// ConfigVersion is the schema version written by DefaultConfig
const ConfigVersion = "1.0"

// Config holds every tunable constant of the battle engine
type Config struct {
	Version string         `json:"version"`
	Damage  DamageSettings `json:"damage"`
	Traits  TraitSettings  `json:"traits"`
	AI      AISettings     `json:"ai"`
}

// DamageSettings tunes the damage model
type DamageSettings struct {
	CritChance     float64 `json:"crit_chance"`
	CritMultiplier float64 `json:"crit_multiplier"`
	STABMultiplier float64 `json:"stab_multiplier"`
	RollMin        int     `json:"roll_min"`
	RollMax        int     `json:"roll_max"`
}

// TraitSettings tunes secret trait assignment and effects
type TraitSettings struct {
	AssignChance       float64 `json:"assign_chance"`
	LastStandThreshold float64 `json:"last_stand_threshold"`
	LastStandShield    float64 `json:"last_stand_shield"`
	MomentumHits       int     `json:"momentum_hits"`
	MomentumBoost      float64 `json:"momentum_boost"`
	WildLuckChance     float64 `json:"wild_luck_chance"`
	WildLuckMultiplier float64 `json:"wild_luck_multiplier"`
}

// AISettings tunes move selection and the switch policy
type AISettings struct {
	Jitter           float64 `json:"jitter"`
	RollExpectation  float64 `json:"roll_expectation"`
	CritExpectation  float64 `json:"crit_expectation"`
	FasterFactor     float64 `json:"faster_factor"`
	SlowerFactor     float64 `json:"slower_factor"`
	IncomingWeight   float64 `json:"incoming_weight"`
	DangerWeight     float64 `json:"danger_weight"`
	LosingScore      float64 `json:"losing_score"`
	LosingMargin     float64 `json:"losing_margin"`
	LowHP            float64 `json:"low_hp"`
	LowHPMargin      float64 `json:"low_hp_margin"`
	CriticalHP       float64 `json:"critical_hp"`
	CriticalHPMargin float64 `json:"critical_hp_margin"`
	PreferredSwitch  float64 `json:"preferred_switch"`
	BaselineSwitch   float64 `json:"baseline_switch"`
	MinSwitch        float64 `json:"min_switch"`
	MaxSwitch        float64 `json:"max_switch"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() *Config {
	return &Config{
		Version: ConfigVersion,
		Damage: DamageSettings{
			CritChance:     0.0625,
			CritMultiplier: 1.5,
			STABMultiplier: 1.5,
			RollMin:        85,
			RollMax:        100,
		},
		Traits: TraitSettings{
			AssignChance:       0.20,
			LastStandThreshold: 0.12,
			LastStandShield:    0.5,
			MomentumHits:       2,
			MomentumBoost:      1.25,
			WildLuckChance:     0.08,
			WildLuckMultiplier: 1.5,
		},
		AI: AISettings{
			Jitter:           2,
			RollExpectation:  0.925,
			CritExpectation:  1.03125,
			FasterFactor:     1.1,
			SlowerFactor:     0.95,
			IncomingWeight:   0.9,
			DangerWeight:     0.5,
			LosingScore:      -12,
			LosingMargin:     6,
			LowHP:            0.35,
			LowHPMargin:      4,
			CriticalHP:       0.20,
			CriticalHPMargin: -1,
			PreferredSwitch:  0.85,
			BaselineSwitch:   0.10,
			MinSwitch:        0.02,
			MaxSwitch:        0.95,
		},
	}
}

// LoadConfig reads a JSON config file, checks it against the embedded schema
// and overlays it on DefaultConfig so omitted fields keep their stock values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextReadConfig, err)
	}
	return ParseConfig(data)
}

// ParseConfig is LoadConfig for an in-memory document
func ParseConfig(data []byte) (*Config, error) {
	sv := validation.NewSchemaValidator()
	if err := sv.AddSchema(configSchemaName, configSchema); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextValidateConfig, err)
	}
	if err := sv.ValidateBytes(data, configSchemaName); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrContextValidateConfig, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseConfig, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// validateConfig checks cross-field rules the schema cannot express
func validateConfig(cfg *Config) error {
	if cfg.Damage.RollMin > cfg.Damage.RollMax {
		return fmt.Errorf("roll_min (%d) exceeds roll_max (%d)", cfg.Damage.RollMin, cfg.Damage.RollMax)
	}
	if cfg.AI.MinSwitch > cfg.AI.MaxSwitch {
		return fmt.Errorf("min_switch (%.2f) exceeds max_switch (%.2f)", cfg.AI.MinSwitch, cfg.AI.MaxSwitch)
	}
	if cfg.AI.CriticalHP > cfg.AI.LowHP {
		return fmt.Errorf("critical_hp (%.2f) exceeds low_hp (%.2f)", cfg.AI.CriticalHP, cfg.AI.LowHP)
	}
	return nil
}
