package stats

import (
	"context"
	"fmt"

	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/logger"
)

// EventHandler feeds battle.completed events into the stats service
type EventHandler struct {
	service Service
}

func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{service: service}
}

// Register subscribes to battle.completed on bus
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.BattleCompleted, h.HandleBattleCompleted)
}

// HandleBattleCompleted records the summary carried by evt. Summaries without
// a match ID cannot be deduplicated and are dropped.
func (h *EventHandler) HandleBattleCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.BattleCompletedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayloadFailed, err)
	}
	if payload.Summary.MatchID == "" {
		logger.FromContext(ctx).Warn(LogMsgSummaryWithoutMatchID, "turns", payload.Summary.Turns)
		return nil
	}
	return h.service.RecordBattle(ctx, payload.Summary)
}
