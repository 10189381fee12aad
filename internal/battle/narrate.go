package battle

import (
	"fmt"

	"github.com/osse101/battlesim/internal/domain"
)

// Narration fragments
const (
	narrateStart        = "⚔️ Battle start!"
	narrateCritical     = "  ➤ Critical hit!"
	narrateSuper        = "  ➤ It's super effective!"
	narrateNotVery      = "  ➤ It's not very effective…"
	narrateNoEffect     = "  ➤ It doesn't affect the target…"
	narrateDraw         = "🏁 It's a draw!"
	narrateDefenderVerb = "stirs"
	narrateAttackerVerb = "awakens"
)

// Narrate renders events as battle log lines
func Narrate(events []domain.BattleEvent) []string {
	var lines []string
	for _, ev := range events {
		lines = append(lines, NarrateEvent(ev)...)
	}
	return lines
}

// NarrateEvent renders one event. Attacks can produce follow-up lines.
func NarrateEvent(ev domain.BattleEvent) []string {
	team := ev.Side.Label()
	switch ev.Kind {
	case domain.BattleEventStart:
		return []string{narrateStart}
	case domain.BattleEventSwitch:
		return []string{fmt.Sprintf("%s switched to %s!", team, ev.Actor)}
	case domain.BattleEventSendOut:
		return []string{fmt.Sprintf("%s sends out %s!", team, ev.Actor)}
	case domain.BattleEventMiss:
		return []string{fmt.Sprintf("%s %s used %s… and missed!", team, ev.Actor, ev.Move)}
	case domain.BattleEventTrait:
		verb := narrateAttackerVerb
		if ev.TraitOwner == RoleDefender {
			verb = narrateDefenderVerb
		}
		return []string{fmt.Sprintf("%s %s's secret (%s) %s… %s", team, ev.Actor, ev.TraitName, verb, ev.Message)}
	case domain.BattleEventDiscovered:
		return []string{fmt.Sprintf("Secret discovered: %s - %s", ev.TraitName, ev.TraitHint)}
	case domain.BattleEventAttack:
		return narrateAttack(ev)
	case domain.BattleEventFaint:
		return []string{fmt.Sprintf("%s %s fainted!", team, ev.Actor)}
	case domain.BattleEventMatchEnd:
		if ev.Winner == "" {
			return []string{narrateDraw}
		}
		return []string{fmt.Sprintf("🏁 %s wins!", ev.Winner.Label())}
	}
	return nil
}

func narrateAttack(ev domain.BattleEvent) []string {
	lines := []string{fmt.Sprintf("%s %s used %s! (-%d HP)", ev.Side.Label(), ev.Actor, ev.Move, ev.Damage)}
	if ev.Critical {
		lines = append(lines, narrateCritical)
	}
	switch {
	case ev.Effectiveness >= 2:
		lines = append(lines, narrateSuper)
	case ev.Effectiveness > 0 && ev.Effectiveness < 1:
		lines = append(lines, narrateNotVery)
	case ev.Effectiveness == 0:
		lines = append(lines, narrateNoEffect)
	}
	return lines
}
