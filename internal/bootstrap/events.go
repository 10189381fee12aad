package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/osse101/battlesim/internal/config"
	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/logger"
)

// InitializeEventSystem returns the in-memory bus and the resilient publisher
// wrapping it. Services publish through the publisher; subscribers attach to
// the bus.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	retries, delay, path := deliverySettings(cfg)

	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, retries, delay, path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	logger.Info(LogMsgEventSystemInitialized, "max_retries", retries, "retry_delay", delay, "deadletter_path", path)
	return bus, publisher, nil
}

// deliverySettings fills zero config values with the package defaults
func deliverySettings(cfg *config.Config) (retries int, delay time.Duration, path string) {
	retries, delay, path = cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath
	if retries <= 0 {
		retries = config.DefaultEventMaxRetries
	}
	if delay <= 0 {
		delay = config.DefaultEventRetryDelay
	}
	if path == "" {
		path = config.DefaultEventDeadLetterPath
	}
	return retries, delay, path
}
