package battle

import (
	"github.com/tmwork1/jpoke/internal/data"
	"github.com/tmwork1/jpoke/internal/model"
)

func ability(name string, handlers map[Event][]*Handler) {
	registerRecord(&EffectRecord{Name: name, Kind: KindAbility, Handlers: handlers})
}

// setsField starts a weather or terrain when its holder enters.
func setsField(m func(*Battle) *FieldManager, field string) map[Event][]*Handler {
	return map[Event][]*Handler{
		EventSwitchIn: {{
			Role:   SourceSelf,
			Log:    LogOnSuccess,
			Reveal: true,
			Func: func(b *Battle, c *Context, _ any) Result {
				if !m(b).Activate(field, 5, c.Source) {
					return Keep()
				}
				return Done()
			},
		}},
	}
}

// doublesSpeedIn doubles speed while a weather is active.
func doublesSpeedIn(weather string) map[Event][]*Handler {
	return map[Event][]*Handler{
		EventModifySpeed: {{
			Role: SourceSelf,
			Func: func(b *Battle, _ *Context, v any) Result {
				if b.weather.Current() != weather {
					return Keep()
				}
				return Set(v.(int) * 2)
			},
		}},
	}
}

func weatherOf(b *Battle) *FieldManager { return b.weather }
func terrainOf(b *Battle) *FieldManager { return b.terrain }

func init() {
	ability("intimidate", map[Event][]*Handler{
		EventSwitchIn: {{
			Role:   SourceSelf,
			Log:    LogAlways,
			Reveal: true,
			Func: func(b *Battle, c *Context, _ any) Result {
				if foe := b.Foe(c.Source); foe != nil {
					b.BoostStage(foe, c.Source, model.StageAttack, -1)
				}
				return Done()
			},
		}},
	})

	ability("clear-body", map[Event][]*Handler{
		EventTryStatChange: {{
			Role:   TargetSelf,
			Log:    LogOnSuccess,
			Reveal: true,
			Func: func(_ *Battle, c *Context, v any) Result {
				if v.(int) >= 0 || c.Source == nil || c.Source.Handle == c.Target.Handle {
					return Keep()
				}
				return Set(0).WithNote(c.Target.Name() + "'s stats were not lowered")
			},
		}},
	})

	ability("levitate", map[Event][]*Handler{
		EventGrounded: {{
			Role: SourceSelf,
			Func: func(_ *Battle, _ *Context, _ any) Result {
				return Set(false)
			},
		}},
		EventTryHit: {{
			Role:   TargetSelf,
			Log:    LogOnSuccess,
			Reveal: true,
			Func: func(b *Battle, c *Context, _ any) Result {
				if c.Move.Type != "ground" || b.global.IsActive(Gravity) {
					return Keep()
				}
				return Veto(false).WithNote(c.Target.Name() + " avoided the attack")
			},
		}},
	})

	ability("speed-boost", map[Event][]*Handler{
		EventEndAbility: {{
			Role:   SourceSelf,
			Reveal: true,
			Log:    LogOnSuccess,
			Func: func(b *Battle, c *Context, _ any) Result {
				if c.Source.TurnsActive < 2 {
					return Keep()
				}
				if b.BoostStage(c.Source, c.Source, model.StageSpeed, 1) == 0 {
					return Keep()
				}
				return Done()
			},
		}},
	})

	ability("sturdy", map[Event][]*Handler{
		EventBeforeDamage: {{
			Role:   TargetSelf,
			Log:    LogOnSuccess,
			Reveal: true,
			Func: func(_ *Battle, c *Context, v any) Result {
				t := c.Target
				if t.HP() != t.MaxHP() || v.(int) < t.HP() {
					return Keep()
				}
				return Set(t.HP() - 1).WithNote(t.Name() + " endured the hit")
			},
		}},
	})

	ability("adaptability", map[Event][]*Handler{
		EventAttackerTypeModifier: {{
			Role: SourceSelf,
			Func: func(_ *Battle, _ *Context, v any) Result {
				switch v.(float64) {
				case 1.5:
					return Set(2.0)
				case 2:
					return Set(2.25)
				}
				return Keep()
			},
		}},
	})

	ability("technician", map[Event][]*Handler{
		EventModifyPower: {{
			Role: SourceSelf,
			Func: func(_ *Battle, _ *Context, v any) Result {
				if v.(int) > 60 {
					return Keep()
				}
				return Set(v.(int) * 3 / 2)
			},
		}},
	})

	ability("huge-power", map[Event][]*Handler{
		EventModifyOffense: {{
			Role: SourceSelf,
			Func: func(_ *Battle, c *Context, v any) Result {
				if c.Move.Category != data.Physical || c.Move.HasFlag(data.FlagTargetOffense) {
					return Keep()
				}
				return Set(v.(int) * 2)
			},
		}},
	})

	ability("unaware", map[Event][]*Handler{
		EventIgnoreStages: {{
			Role: SourceSelf,
			Func: func(_ *Battle, _ *Context, _ any) Result {
				return Set(true)
			},
		}},
	})

	ability("emergency-exit", map[Event][]*Handler{
		EventHit: {{
			Role:   TargetSelf,
			Log:    LogOnSuccess,
			Reveal: true,
			Func: func(b *Battle, c *Context, _ any) Result {
				t := c.Target
				before := t.HP() + c.Damage
				if t.Fainted() || c.Damage == 0 || before*2 < t.MaxHP() || t.HP()*2 >= t.MaxHP() {
					return Keep()
				}
				if !b.RequestInterrupt(t.Handle.Player, model.InterruptEmergency) {
					return Keep()
				}
				return Done()
			},
		}},
	})

	ability("static", map[Event][]*Handler{
		EventHit: {{
			Role:   TargetSelf,
			Log:    LogOnSuccess,
			Reveal: true,
			Func: func(b *Battle, c *Context, _ any) Result {
				if !c.Move.Contact() || c.Damage == 0 || !b.chance(ChanceSecondary, 30, 100) {
					return Keep()
				}
				if !b.InflictStatus(c.Source, c.Target, StatusParalysis) {
					return Keep()
				}
				return Done()
			},
		}},
	})

	ability("drought", setsField(weatherOf, Sun))
	ability("drizzle", setsField(weatherOf, Rain))
	ability("sand-stream", setsField(weatherOf, Sand))
	ability("snow-warning", setsField(weatherOf, Snow))
	ability("electric-surge", setsField(terrainOf, ElectricTerrain))
	ability("grassy-surge", setsField(terrainOf, GrassyTerrain))
	ability("psychic-surge", setsField(terrainOf, PsychicTerrain))
	ability("misty-surge", setsField(terrainOf, MistyTerrain))

	ability("swift-swim", doublesSpeedIn(Rain))
	ability("chlorophyll", doublesSpeedIn(Sun))

	ability("shadow-tag", map[Event][]*Handler{
		EventTrapCheck: {{
			Role:   SourceOpponent,
			Reveal: true,
			Log:    LogOnSuccess,
			Func: func(_ *Battle, c *Context, _ any) Result {
				if c.Target == nil || c.Target.Fainted() || c.Source.HasType("ghost") || c.Source.Ability == "shadow-tag" {
					return Keep()
				}
				return Veto(false).WithNote(c.Source.Name() + " is trapped")
			},
		}},
	})

	ability("serene-grace", map[Event][]*Handler{
		EventSecondaryChance: {{
			Role: SourceSelf,
			Func: func(_ *Battle, _ *Context, v any) Result {
				return Set(v.(int) * 2)
			},
		}},
	})

	ability("intrepid-sword", map[Event][]*Handler{
		EventSwitchIn: {{
			Role:   SourceSelf,
			Once:   true,
			Log:    LogAlways,
			Reveal: true,
			Func: func(b *Battle, c *Context, _ any) Result {
				b.BoostStage(c.Source, c.Source, model.StageAttack, 1)
				return Done()
			},
		}},
	})

	// Abilities without battle effects in this ruleset.
	for _, name := range []string{"pressure", "inner-focus", "keen-eye", "overgrow", "blaze", "torrent"} {
		ability(name, nil)
	}
}
