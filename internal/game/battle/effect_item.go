package battle

import (
	"github.com/tmwork1/jpoke/internal/data"
	"github.com/tmwork1/jpoke/internal/model"
)

func item(name string, handlers map[Event][]*Handler) {
	registerRecord(&EffectRecord{Name: name, Kind: KindItem, Handlers: handlers})
}

// extends lengthens the fields it names to 8 turns.
func extends(fields ...string) map[Event][]*Handler {
	return map[Event][]*Handler{
		EventDurationCheck: {{
			Role: SourceSelf,
			Func: func(_ *Battle, c *Context, v any) Result {
				for _, f := range fields {
					if c.Effect == f {
						return Set(max(v.(int), 8))
					}
				}
				return Keep()
			},
		}},
	}
}

// choiceLock locks the holder into the move it just used.
func choiceLock() *Handler {
	return &Handler{
		Role: SourceSelf,
		Func: func(b *Battle, c *Context, _ any) Result {
			if i := c.Source.MoveIndex(c.Move.Name); i >= 0 {
				b.AddVolatile(c.Source, VolatileChoiceLock, i, c.Source)
			}
			return Keep()
		},
	}
}

// pinchHeal restores a quarter of max HP once the holder is at half or less.
func pinchHeal(role RoleSpec) *Handler {
	return &Handler{
		Role:   role,
		Log:    LogOnSuccess,
		Reveal: true,
		Func: func(b *Battle, c *Context, _ any) Result {
			holder := c.role(role.Role)
			if holder.Fainted() || holder.HP()*2 > holder.MaxHP() {
				return Keep()
			}
			b.RestoreHP(holder, Fraction(holder, 1, 4), "sitrus-berry")
			b.ConsumeItem(holder)
			return Done()
		},
	}
}

// survivesAtFull is the focus-sash check: a full-HP holder survives any hit
// with 1 HP left.
func survivesAtFull(c *model.Combatant, dmg int) bool {
	return c.HP() == c.MaxHP() && dmg >= c.HP()
}

func init() {
	item("leftovers", map[Event][]*Handler{
		EventEndAbility: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				b.RestoreHP(c.Source, Fraction(c.Source, 1, 16), "leftovers")
				return Done()
			},
		}},
	})

	item("life-orb", map[Event][]*Handler{
		EventDamageModifier: {{
			Role: SourceSelf,
			Func: func(_ *Battle, _ *Context, v any) Result {
				return Set(chain(v, 5324))
			},
		}},
		EventAfterMove: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				if c.Damage == 0 {
					return Keep()
				}
				c.Source.ItemRevealed = true
				b.ChipDamage(c.Source, Fraction(c.Source, 1, 10), "life-orb")
				return Done()
			},
		}},
	})

	item("choice-scarf", map[Event][]*Handler{
		EventModifySpeed: {{
			Role: SourceSelf,
			Func: func(_ *Battle, _ *Context, v any) Result {
				return Set(v.(int) * 3 / 2)
			},
		}},
		EventAfterMove: {choiceLock()},
	})

	item("choice-band", map[Event][]*Handler{
		EventModifyOffense: {{
			Role: SourceSelf,
			Func: func(_ *Battle, c *Context, v any) Result {
				if c.Move.Category != data.Physical {
					return Keep()
				}
				return Set(v.(int) * 3 / 2)
			},
		}},
		EventAfterMove: {choiceLock()},
	})

	item("choice-specs", map[Event][]*Handler{
		EventModifyOffense: {{
			Role: SourceSelf,
			Func: func(_ *Battle, c *Context, v any) Result {
				if c.Move.Category != data.Special {
					return Keep()
				}
				return Set(v.(int) * 3 / 2)
			},
		}},
		EventAfterMove: {choiceLock()},
	})

	item("focus-sash", map[Event][]*Handler{
		EventBeforeDamage: {{
			Role:   TargetSelf,
			Log:    LogOnSuccess,
			Reveal: true,
			Func: func(b *Battle, c *Context, v any) Result {
				t := c.Target
				if !survivesAtFull(t, v.(int)) {
					return Keep()
				}
				b.ConsumeItem(t)
				return Set(t.HP() - 1).WithNote(t.Name() + " hung on using its focus-sash")
			},
		}},
	})

	item("eject-button", map[Event][]*Handler{
		EventHit: {{
			Role:   TargetSelf,
			Log:    LogOnSuccess,
			Reveal: true,
			Func: func(b *Battle, c *Context, _ any) Result {
				t := c.Target
				if c.Damage == 0 || t.Fainted() {
					return Keep()
				}
				if !b.RequestInterrupt(t.Handle.Player, model.InterruptHitSwitch) {
					return Keep()
				}
				b.ConsumeItem(t)
				return Done()
			},
		}},
	})

	item("rocky-helmet", map[Event][]*Handler{
		EventHit: {{
			Role:   TargetSelf,
			Log:    LogOnSuccess,
			Reveal: true,
			Func: func(b *Battle, c *Context, _ any) Result {
				if !c.Move.Contact() || c.Damage == 0 {
					return Keep()
				}
				if b.ChipDamage(c.Source, Fraction(c.Source, 1, 6), "rocky-helmet") == 0 {
					return Keep()
				}
				return Done()
			},
		}},
	})

	item("sitrus-berry", map[Event][]*Handler{
		EventHit:        {pinchHeal(TargetSelf)},
		EventEndAbility: {pinchHeal(SourceSelf)},
	})

	item("heat-rock", extends(Sun))
	item("damp-rock", extends(Rain))
	item("smooth-rock", extends(Sand))
	item("icy-rock", extends(Snow))
	item("terrain-extender", extends(ElectricTerrain, GrassyTerrain, PsychicTerrain, MistyTerrain))
	item("light-clay", extends(Reflect, LightScreen))
}
