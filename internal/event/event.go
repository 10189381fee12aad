package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/battlesim/internal/domain"
)

// Type names an event stream
type Type string

// Battle event types
const (
	BattleStarted    Type = domain.EventTypeBattleStarted
	BattleCompleted  Type = domain.EventTypeBattleCompleted
	SecretDiscovered Type = domain.EventTypeSecretDiscovered
)

// MetadataKeyMatchID is the metadata key carrying the originating match
const MetadataKeyMatchID = "match_id"

// Metadata holds routing details that are not part of the payload
type Metadata map[string]any

// Event is the envelope published on a Bus. Payload is one of the *PayloadV1
// structs, or a generic map once the event has been through JSON.
type Event struct {
	Version  string   `json:"version"`
	Type     Type     `json:"type"`
	Payload  any      `json:"payload"`
	Metadata Metadata `json:"metadata"`
}

// GetMetadataValue returns the metadata entry for key, or nil
func (e Event) GetMetadataValue(key string) any {
	return e.Metadata[key]
}

// MatchID returns the match the event belongs to, if tagged
func (e Event) MatchID() string {
	id, _ := e.Metadata[MetadataKeyMatchID].(string)
	return id
}

func newEvent(t Type, matchID string, payload any) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: Metadata{MetadataKeyMatchID: matchID},
	}
}

// BattleStartedPayloadV1 lists both rosters as the match begins
type BattleStartedPayloadV1 struct {
	MatchID   string   `json:"match_id"`
	Red       []string `json:"red"`
	Blue      []string `json:"blue"`
	Timestamp int64    `json:"timestamp"`
}

// BattleCompletedPayloadV1 carries the final tally of a battle
type BattleCompletedPayloadV1 struct {
	Summary   domain.BattleSummary `json:"summary"`
	Timestamp int64                `json:"timestamp"`
}

// SecretDiscoveredPayloadV1 names the trait revealed and who revealed it
type SecretDiscoveredPayloadV1 struct {
	MatchID   string      `json:"match_id"`
	TraitKey  string      `json:"trait_key"`
	TraitName string      `json:"trait_name"`
	Side      domain.Side `json:"side"`
	Actor     string      `json:"actor"`
	Timestamp int64       `json:"timestamp"`
}

func NewBattleStartedEvent(matchID string, red, blue []string) Event {
	return newEvent(BattleStarted, matchID, BattleStartedPayloadV1{
		MatchID:   matchID,
		Red:       red,
		Blue:      blue,
		Timestamp: time.Now().Unix(),
	})
}

func NewBattleCompletedEvent(summary domain.BattleSummary) Event {
	return newEvent(BattleCompleted, summary.MatchID, BattleCompletedPayloadV1{
		Summary:   summary,
		Timestamp: time.Now().Unix(),
	})
}

// NewSecretDiscoveredEvent builds the event from the discovery entry of a battle log
func NewSecretDiscoveredEvent(matchID string, ev domain.BattleEvent) Event {
	return newEvent(SecretDiscovered, matchID, SecretDiscoveredPayloadV1{
		MatchID:   matchID,
		TraitKey:  ev.TraitKey,
		TraitName: ev.TraitName,
		Side:      ev.Side,
		Actor:     ev.Actor,
		Timestamp: time.Now().Unix(),
	})
}

// Handler reacts to one event
type Handler func(ctx context.Context, event Event) error

// Bus delivers events to the handlers subscribed to their type
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-process Bus
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every handler for the event's type synchronously, in
// subscription order. A failing handler does not stop the rest; all errors
// are joined into the result.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrMsgHandlersFailedFmt, len(errs), event.Type, errors.Join(errs...))
}

func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
