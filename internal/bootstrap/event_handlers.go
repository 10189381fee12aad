package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/metrics"
	"github.com/osse101/battlesim/internal/stats"
)

// EventHandlerDependencies are the subscribers' collaborators
type EventHandlerDependencies struct {
	EventBus     event.Bus
	StatsService stats.Service
}

// RegisterEventHandlers subscribes the stats recorder, the metrics collector
// and the discovery announcer to the bus.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	stats.NewEventHandler(deps.StatsService).Register(deps.EventBus)
	logger.Info(LogMsgStatsHandlerRegistered)

	if err := metrics.NewEventMetricsCollector().Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	deps.EventBus.Subscribe(event.SecretDiscovered, announceDiscovery)
	return nil
}

// announceDiscovery writes first-time secret discoveries to the service log
func announceDiscovery(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SecretDiscoveredPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSecretDiscovered,
		"match_id", p.MatchID,
		"trait", p.TraitName,
		"side", p.Side,
		"creature", p.Actor)
	return nil
}
