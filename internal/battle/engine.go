package battle

import (
	"context"
	"math"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
)

// AdvanceTurn plays exactly one turn and returns what happened.
// Calling it on a finished session returns domain.ErrBattleOver instead of
// panicking, so drivers can report the misuse as a conflict.
func (s *Session) AdvanceTurn(ctx context.Context) ([]domain.BattleEvent, error) {
	if s.over {
		return nil, domain.ErrBattleOver
	}

	s.turn++
	s.events = nil

	red, blue := s.Active(domain.SideRed), s.Active(domain.SideBlue)
	actions := [2]Action{
		DecideAction(s.rng, s.teams[0], s.active[0], blue, s.cfg, s.bias[0]),
		DecideAction(s.rng, s.teams[1], s.active[1], red, s.cfg, s.bias[1]),
	}

	if s.resolveStruggle(ctx, actions) {
		return s.flush(), nil
	}

	for i, side := range domain.Sides {
		if actions[i].IsSwitch() {
			s.switchTo(side, actions[i])
		}
	}

	switch {
	case actions[0].IsSwitch() && actions[1].IsSwitch():
		// both sides spent the turn switching
	case actions[1].IsSwitch():
		s.attack(ctx, domain.SideRed, actions[0].Move)
	case actions[0].IsSwitch():
		s.attack(ctx, domain.SideBlue, actions[1].Move)
	default:
		first := s.firstMover()
		if !s.attack(ctx, first, actions[first.Index()].Move) {
			second := first.Opponent()
			s.attack(ctx, second, actions[second.Index()].Move)
		}
	}

	return s.flush(), nil
}

func (s *Session) flush() []domain.BattleEvent {
	out := s.events
	s.events = nil
	return out
}

// resolveStruggle ends the battle when a side has nothing left to send out
func (s *Session) resolveStruggle(ctx context.Context, actions [2]Action) bool {
	redOut := actions[0].Kind == ActionStruggle
	blueOut := actions[1].Kind == ActionStruggle
	switch {
	case redOut && blueOut:
		s.finish(ctx, "", true)
	case redOut:
		s.finish(ctx, domain.SideBlue, false)
	case blueOut:
		s.finish(ctx, domain.SideRed, false)
	default:
		return false
	}
	return true
}

func (s *Session) switchTo(side domain.Side, action Action) {
	i := side.Index()
	prev := s.Active(side)
	mustInvariant(!s.teams[i][action.SwitchTo].Fainted, "switch into fainted combatant")
	s.active[i] = action.SwitchTo
	next := s.Active(side)

	if action.Kind == ActionForcedSwitch {
		s.emit(domain.BattleEvent{Kind: domain.BattleEventSendOut, Side: side, Actor: next.Name()})
		return
	}
	s.emit(domain.BattleEvent{Kind: domain.BattleEventSwitch, Side: side, Actor: next.Name(), Target: prev.Name()})
}

// firstMover orders by Speed, breaking ties with a fair coin
func (s *Session) firstMover() domain.Side {
	redSpeed := s.Active(domain.SideRed).Template.Stats.Speed
	blueSpeed := s.Active(domain.SideBlue).Template.Stats.Speed
	switch {
	case redSpeed > blueSpeed:
		return domain.SideRed
	case blueSpeed > redSpeed:
		return domain.SideBlue
	case chance(s.rng, 0.5):
		return domain.SideRed
	default:
		return domain.SideBlue
	}
}

// attack resolves one move from side's active into the opposing active.
// It returns true when the defender fainted, which ends the turn.
func (s *Session) attack(ctx context.Context, side domain.Side, move domain.Move) bool {
	defSide := side.Opponent()
	atk, def := s.Active(side), s.Active(defSide)
	mustInvariant(!atk.Fainted && !def.Fainted, "attack with or into a fainted combatant")

	if !percent(s.rng, move.Accuracy) {
		atk.HitsInRow = 0
		s.emit(domain.BattleEvent{
			Kind:   domain.BattleEventMiss,
			Side:   side,
			Actor:  atk.Name(),
			Target: def.Name(),
			Move:   move.Label(),
		})
		return false
	}

	tctx := TraitContext{Attacker: atk, Defender: def, Rand: s.rng, Config: s.cfg.Traits}
	if msg, ok := tryFire(def, RoleDefender, tctx); ok {
		s.announceTrait(ctx, defSide, def, msg)
	}
	if msg, ok := tryFire(atk, RoleAttacker, tctx); ok {
		s.announceTrait(ctx, side, atk, msg)
	}

	boosted := move
	boosted.Power = int(math.Floor(float64(move.Power) * atk.Mods.PowerBoost))
	atk.Mods.PowerBoost = neutralBoost

	res := ResolveDamage(s.rng, atk, def, boosted, s.cfg.Damage)
	dmg := res.Damage
	if res.Effectiveness > 0 {
		dmg = int(math.Floor(float64(dmg) * def.Mods.Shield))
		if atk.Mods.GuaranteedCrit {
			dmg = int(math.Floor(float64(dmg) * s.cfg.Traits.WildLuckMultiplier))
			res.Critical = true
		}
		dmg = max(1, dmg)
	}
	atk.Mods.GuaranteedCrit = false
	def.Mods.Shield = neutralShield

	def.applyDamage(dmg)
	atk.HitsInRow++
	atk.DamageDealt += dmg

	s.emit(domain.BattleEvent{
		Kind:          domain.BattleEventAttack,
		Side:          side,
		Actor:         atk.Name(),
		Target:        def.Name(),
		Move:          move.Label(),
		Damage:        dmg,
		Effectiveness: res.Effectiveness,
		Critical:      res.Critical,
		TargetHP:      def.CurrentHP,
		TargetMaxHP:   def.MaxHP(),
	})

	if !def.Fainted {
		return false
	}
	s.handleFaint(ctx, side, atk, defSide, def)
	return true
}

// handleFaint credits the knockout and brings in the next combatant in roster
// order, or ends the battle when the fainted side has none left.
func (s *Session) handleFaint(ctx context.Context, atkSide domain.Side, atk *Combatant, defSide domain.Side, fainted *Combatant) {
	atk.Knockouts++
	s.emit(domain.BattleEvent{Kind: domain.BattleEventFaint, Side: defSide, Actor: fainted.Name()})

	i := defSide.Index()
	next := s.teams[i].nextAlive(s.active[i])
	if next < 0 {
		s.finish(ctx, atkSide, false)
		return
	}
	s.active[i] = next
	s.emit(domain.BattleEvent{Kind: domain.BattleEventSendOut, Side: defSide, Actor: s.Active(defSide).Name()})
}

// announceTrait narrates a trait firing. The name stays masked unless it was
// already discovered; a first firing reveals it and records the discovery.
func (s *Session) announceTrait(ctx context.Context, side domain.Side, owner *Combatant, msg string) {
	t := owner.Trait
	log := logger.FromContext(ctx)

	discovered, err := s.discovery.HasDiscovered(ctx, t.Key)
	if err != nil {
		log.Warn(LogMsgDiscoveryLookupFail, "trait", t.Key, "error", err)
	}

	name := UndiscoveredTraitName
	if discovered {
		name = t.Name
	}
	s.emit(domain.BattleEvent{
		Kind:       domain.BattleEventTrait,
		Side:       side,
		Actor:      owner.Name(),
		TraitKey:   t.Key,
		TraitName:  name,
		TraitOwner: t.Role,
		Message:    msg,
	})
	log.Debug(LogMsgTraitTriggered, "side", side, "combatant", owner.Name(), "trait", t.Key)

	if discovered {
		return
	}
	if err := s.discovery.MarkDiscovered(ctx, t.Key); err != nil {
		log.Warn(LogMsgDiscoveryMarkFail, "trait", t.Key, "error", err)
	}
	s.emit(domain.BattleEvent{
		Kind:      domain.BattleEventDiscovered,
		Side:      side,
		Actor:     owner.Name(),
		TraitKey:  t.Key,
		TraitName: t.Name,
		TraitHint: t.Hint,
	})
}
