package battle

// Event is a kind of engine event that handlers can subscribe to.
// The set is closed: effects only contribute (Event, Handler) pairs.
type Event uint8

const (
	EventSwitchIn  Event = iota // after a combatant enters the field
	EventSwitchOut              // before a combatant leaves the field

	EventBeforeMove // bool: may the source act this turn
	EventTryHit     // bool: does the move connect with the target
	EventGrounded   // bool: is the source affected by ground-level effects

	EventModifyAccuracy  // int: percent accuracy
	EventModifyPriority  // int: action priority
	EventModifySpeed     // int: effective speed
	EventModifyPower     // int: base power
	EventModifyOffense   // int: staged offense stat
	EventModifyDefense   // int: staged defense stat
	EventIgnoreStages    // bool: bypass stages unfavorable to the attacker
	EventModifyCritStage // int: critical-hit stage

	EventAttackerTypeModifier // float64: same-type bonus
	EventDefenderTypeModifier // float64: type effectiveness
	EventDamageModifier       // int: general modifier on a 4096 scale

	EventBeforeDamage // int: final damage about to be dealt
	EventHit          // after the move hit (damage applied, if any)
	EventAfterMove    // after the user finished its move

	EventSecondaryChance // int: percent chance of a secondary effect
	EventTryStatus       // bool: may the target receive ctx.Effect as status
	EventTryStatChange   // int: stage delta about to be applied to the target
	EventTrapCheck       // bool: may the source switch out
	EventDurationCheck   // int: turns for the field ctx.Effect being started

	EventEndWeather  // END_1
	EventEndTerrain  // END_2
	EventEndResidual // END_3
	EventEndVolatile // END_4
	EventEndSide     // END_5
	EventEndAbility  // END_6

	numEvents
)

// valueKind is the type of the value threaded through an event.
type valueKind uint8

const (
	kindNone valueKind = iota
	kindBool
	kindInt
	kindFloat
)

func (k valueKind) String() string {
	switch k {
	case kindNone:
		return "none"
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindFloat:
		return "float64"
	}
	return "kind?"
}

type eventInfo struct {
	name string
	kind valueKind
}

var events = [numEvents]eventInfo{
	EventSwitchIn:             {"switch_in", kindNone},
	EventSwitchOut:            {"switch_out", kindNone},
	EventBeforeMove:           {"before_move", kindBool},
	EventTryHit:               {"try_hit", kindBool},
	EventGrounded:             {"grounded", kindBool},
	EventModifyAccuracy:       {"modify_accuracy", kindInt},
	EventModifyPriority:       {"modify_priority", kindInt},
	EventModifySpeed:          {"modify_speed", kindInt},
	EventModifyPower:          {"modify_power", kindInt},
	EventModifyOffense:        {"modify_offense", kindInt},
	EventModifyDefense:        {"modify_defense", kindInt},
	EventIgnoreStages:         {"ignore_stages", kindBool},
	EventModifyCritStage:      {"modify_crit_stage", kindInt},
	EventAttackerTypeModifier: {"attacker_type_modifier", kindFloat},
	EventDefenderTypeModifier: {"defender_type_modifier", kindFloat},
	EventDamageModifier:       {"damage_modifier", kindInt},
	EventBeforeDamage:         {"before_damage", kindInt},
	EventHit:                  {"hit", kindNone},
	EventAfterMove:            {"after_move", kindNone},
	EventSecondaryChance:      {"secondary_chance", kindInt},
	EventTryStatus:            {"try_status", kindBool},
	EventTryStatChange:        {"try_stat_change", kindInt},
	EventTrapCheck:            {"trap_check", kindBool},
	EventDurationCheck:        {"duration_check", kindInt},
	EventEndWeather:           {"end_weather", kindNone},
	EventEndTerrain:           {"end_terrain", kindNone},
	EventEndResidual:          {"end_residual", kindNone},
	EventEndVolatile:          {"end_volatile", kindNone},
	EventEndSide:              {"end_side", kindNone},
	EventEndAbility:           {"end_ability", kindNone},
}

func (e Event) String() string {
	if e < numEvents {
		return events[e].name
	}
	return "event?"
}

func (e Event) kind() valueKind {
	return events[e].kind
}
