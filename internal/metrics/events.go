package metrics

import (
	"context"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all battle events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BattleStarted,
		event.BattleCompleted,
		event.SecretDiscovered,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BattleStarted:
		BattlesStarted.Inc()

	case event.BattleCompleted:
		payload, err := event.DecodePayload[event.BattleCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		recordSummary(payload.Summary)

	case event.SecretDiscovered:
		payload, err := event.DecodePayload[event.SecretDiscoveredPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		SecretsDiscovered.WithLabelValues(payload.TraitKey).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordSummary(s domain.BattleSummary) {
	BattlesCompleted.WithLabelValues(Outcome(s)).Inc()
	BattleTurns.Observe(float64(s.Turns))

	for _, c := range s.Combatants {
		if c.DamageDealt > 0 {
			DamageDealt.WithLabelValues(string(c.Side)).Add(float64(c.DamageDealt))
		}
		if c.Knockouts > 0 {
			Knockouts.WithLabelValues(string(c.Side)).Add(float64(c.Knockouts))
		}
	}
}

// Outcome maps a summary onto the outcome label
func Outcome(s domain.BattleSummary) string {
	switch {
	case s.Truncated:
		return OutcomeTruncated
	case s.Draw:
		return OutcomeDraw
	case s.Winner == domain.SideBlue:
		return OutcomeBlue
	default:
		return OutcomeRed
	}
}
