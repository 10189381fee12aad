package bootstrap

import (
	"fmt"

	"github.com/osse101/battlesim/internal/battle"
	"github.com/osse101/battlesim/internal/config"
	"github.com/osse101/battlesim/internal/discovery"
	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/match"
	"github.com/osse101/battlesim/internal/pokeapi"
	"github.com/osse101/battlesim/internal/stats"
)

// Services holds the application services
type Services struct {
	Provider  *pokeapi.Provider
	Discovery *discovery.Service
	Stats     stats.Service
	Matches   *match.Service
}

// LoadBattleConfig reads the tuning file at path, or returns stock tuning when path is empty
func LoadBattleConfig(path string) (*battle.Config, error) {
	if path == "" {
		return battle.DefaultConfig(), nil
	}
	cfg, err := battle.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadBattleConfig, err)
	}
	logger.Info(LogMsgBattleConfigLoaded, "path", path, "version", cfg.Version)
	return cfg, nil
}

// NewProvider builds the cached creature data provider from configuration
func NewProvider(cfg *config.Config) *pokeapi.Provider {
	client := pokeapi.NewClient(pokeapi.ClientConfig{
		BaseURL:     cfg.PokeAPIURL,
		Timeout:     cfg.PokeAPITimeout,
		CacheSize:   cfg.CacheSize,
		ListTTL:     cfg.CacheTTL,
		ResourceTTL: cfg.CreatureTTL,
	})
	return pokeapi.NewProvider(client, cfg.DefaultLevel)
}

// InitializeServices wires the services over the given repositories. bus
// receives every battle event; pass the resilient publisher in production.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus) (*Services, error) {
	battleCfg, err := LoadBattleConfig(cfg.BattleConfigPath)
	if err != nil {
		return nil, err
	}

	provider := NewProvider(cfg)
	discoverySvc := discovery.NewService(repos.Discovery)

	svc := &Services{
		Provider:  provider,
		Discovery: discoverySvc,
		Stats:     stats.NewService(repos.Stats),
		Matches: match.NewService(provider, discoverySvc, bus, match.Config{
			MaxTurns: cfg.MaxTurns,
			TTL:      cfg.MatchTTL,
			Capacity: cfg.MatchCapacity,
			Workers:  cfg.SimWorkers,
			Battle:   battleCfg,
		}),
	}

	logger.Info(LogMsgServicesInitialized,
		"max_turns", cfg.MaxTurns,
		"match_capacity", cfg.MatchCapacity,
		"sim_workers", cfg.SimWorkers)
	return svc, nil
}
