package battle

import "github.com/tmwork1/jpoke/internal/data"

// Weather.
const (
	Sun  = "sun"
	Rain = "rain"
	Sand = "sand"
	Snow = "snow"
)

// Terrain.
const (
	ElectricTerrain = "electric-terrain"
	GrassyTerrain   = "grassy-terrain"
	PsychicTerrain  = "psychic-terrain"
	MistyTerrain    = "misty-terrain"
)

// Global fields.
const (
	TrickRoom = "trick-room"
	Gravity   = "gravity"
)

// Side fields.
const (
	StealthRock = "stealth-rock"
	Spikes      = "spikes"
	ToxicSpikes = "toxic-spikes"
	Reflect     = "reflect"
	LightScreen = "light-screen"
	Tailwind    = "tailwind"
)

func field(name string, handlers map[Event][]*Handler) {
	registerRecord(&EffectRecord{Name: name, Kind: KindField, Handlers: handlers})
}

// typeBoost scales the attacker's moves of one type; cut scales another.
func typeBoost(boosted string, boost int, cut string, by int, grounded bool) *Handler {
	return &Handler{
		Role: SourceSelf,
		Func: func(b *Battle, c *Context, v any) Result {
			if grounded && !b.Grounded(c.Source) {
				return Keep()
			}
			switch c.Move.Type {
			case boosted:
				return Set(chain(v, boost))
			case cut:
				if cut != "" {
					return Set(chain(v, by))
				}
			}
			return Keep()
		},
	}
}

// screen halves non-critical damage of one category against its side.
func screen(cat data.Category) *Handler {
	return &Handler{
		Role: TargetSelf,
		Func: func(_ *Battle, c *Context, v any) Result {
			if c.Move.Category != cat || c.Move.Critical {
				return Keep()
			}
			return Set(chain(v, 2048))
		},
	}
}

// blocksStatus vetoes status on grounded targets, optionally for one status.
func blocksStatus(only string) *Handler {
	return &Handler{
		Role: TargetSelf,
		Log:  LogOnSuccess,
		Func: func(b *Battle, c *Context, _ any) Result {
			if (only != "" && c.Effect != only) || !b.Grounded(c.Target) {
				return Keep()
			}
			return Veto(false).WithNote(c.Target.Name() + " is protected by the terrain")
		},
	}
}

func init() {
	field(Sun, map[Event][]*Handler{
		EventDamageModifier: {typeBoost("fire", 6144, "water", 2048, false)},
	})
	field(Rain, map[Event][]*Handler{
		EventDamageModifier: {typeBoost("water", 6144, "fire", 2048, false)},
	})
	field(Sand, map[Event][]*Handler{
		EventEndWeather: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				self := c.Source
				if self.HasType("rock") || self.HasType("ground") || self.HasType("steel") {
					return Keep()
				}
				b.ChipDamage(self, Fraction(self, 1, 16), Sand)
				return Done()
			},
		}},
		EventModifyDefense: {{
			Role: TargetSelf,
			Func: func(_ *Battle, c *Context, v any) Result {
				if c.Move.Category != data.Special || !c.Target.HasType("rock") {
					return Keep()
				}
				return Set(v.(int) * 3 / 2)
			},
		}},
	})
	field(Snow, map[Event][]*Handler{
		EventModifyDefense: {{
			Role: TargetSelf,
			Func: func(_ *Battle, c *Context, v any) Result {
				if c.Move.Category != data.Physical || !c.Target.HasType("ice") {
					return Keep()
				}
				return Set(v.(int) * 3 / 2)
			},
		}},
	})

	field(ElectricTerrain, map[Event][]*Handler{
		EventDamageModifier: {typeBoost("electric", 5325, "", 0, true)},
		EventTryStatus:      {blocksStatus(StatusSleep)},
	})
	field(GrassyTerrain, map[Event][]*Handler{
		EventDamageModifier: {typeBoost("grass", 5325, "", 0, true)},
		EventEndTerrain: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				if !b.Grounded(c.Source) {
					return Keep()
				}
				b.RestoreHP(c.Source, Fraction(c.Source, 1, 16), GrassyTerrain)
				return Done()
			},
		}},
	})
	field(PsychicTerrain, map[Event][]*Handler{
		EventDamageModifier: {typeBoost("psychic", 5325, "", 0, true)},
		EventTryHit: {{
			Role: TargetSelf,
			Log:  LogOnSuccess,
			Func: func(b *Battle, c *Context, _ any) Result {
				if !b.Grounded(c.Target) || b.movePriority(c.Source, c.Move) <= 0 {
					return Keep()
				}
				return Veto(false).WithNote(c.Target.Name() + " is protected by the psychic terrain")
			},
		}},
	})
	field(MistyTerrain, map[Event][]*Handler{
		EventDamageModifier: {{
			Role: TargetSelf,
			Func: func(b *Battle, c *Context, v any) Result {
				if c.Move.Type != "dragon" || !b.Grounded(c.Target) {
					return Keep()
				}
				return Set(chain(v, 2048))
			},
		}},
		EventTryStatus: {blocksStatus("")},
	})

	// Trick room is read directly by the action order.
	field(TrickRoom, nil)
	field(Gravity, map[Event][]*Handler{
		EventGrounded: {{
			Role:     SourceSelf,
			Priority: 10,
			Func: func(_ *Battle, _ *Context, _ any) Result {
				return Set(true)
			},
		}},
		EventModifyAccuracy: {{
			Role: SourceSelf,
			Func: func(_ *Battle, _ *Context, v any) Result {
				return Set(v.(int) * 5 / 3)
			},
		}},
	})

	field(StealthRock, map[Event][]*Handler{
		EventSwitchIn: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				self := c.Source
				eff := data.Effectiveness("rock", self.CurrentTypes())
				b.ChipDamage(self, max(1, int(float64(self.MaxHP())*eff/8)), StealthRock)
				return Done()
			},
		}},
	})
	field(Spikes, map[Event][]*Handler{
		EventSwitchIn: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				self := c.Source
				if !b.Grounded(self) {
					return Keep()
				}
				den := [...]int{8, 8, 6, 4}[min(b.sides[self.Handle.Player].Get(Spikes).Layers, 3)]
				b.ChipDamage(self, Fraction(self, 1, den), Spikes)
				return Done()
			},
		}},
	})
	field(ToxicSpikes, map[Event][]*Handler{
		EventSwitchIn: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				self := c.Source
				side := b.sides[self.Handle.Player]
				if !b.Grounded(self) {
					return Keep()
				}
				if self.HasType("poison") {
					side.Deactivate(ToxicSpikes)
					return Done()
				}
				status := StatusPoison
				if side.Get(ToxicSpikes).Layers >= 2 {
					status = StatusToxic
				}
				b.InflictStatus(self, nil, status)
				return Done()
			},
		}},
	})
	field(Reflect, map[Event][]*Handler{
		EventDamageModifier: {screen(data.Physical)},
	})
	field(LightScreen, map[Event][]*Handler{
		EventDamageModifier: {screen(data.Special)},
	})
	field(Tailwind, map[Event][]*Handler{
		EventModifySpeed: {{
			Role: SourceSelf,
			Func: func(_ *Battle, _ *Context, v any) Result {
				return Set(v.(int) * 2)
			},
		}},
	})
}
