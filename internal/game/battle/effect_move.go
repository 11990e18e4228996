package battle

import (
	"github.com/tmwork1/jpoke/internal/data"
	"github.com/tmwork1/jpoke/internal/model"
)

func move(name string, handlers map[Event][]*Handler) {
	registerRecord(&EffectRecord{Name: name, Kind: KindMove, Handlers: handlers})
}

// onHit runs fn against the move's target after the hit landed.
func onHit(fn func(b *Battle, c *Context)) map[Event][]*Handler {
	return map[Event][]*Handler{
		EventHit: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				fn(b, c)
				return Done()
			},
		}},
	}
}

// secondaryStatus inflicts a status with a percent chance.
func secondaryStatus(status string, percent int) map[Event][]*Handler {
	return onHit(func(b *Battle, c *Context) {
		if c.Target.Fainted() || !b.Secondary(c, percent) {
			return
		}
		b.InflictStatus(c.Target, c.Source, status)
	})
}

// secondaryFlinch makes a slower target flinch.
func secondaryFlinch(percent int) map[Event][]*Handler {
	return onHit(func(b *Battle, c *Context) {
		if c.Target.Fainted() || c.Target.Flags.Moved || !b.Secondary(c, percent) {
			return
		}
		b.AddVolatile(c.Target, VolatileFlinch, 0, c.Source)
	})
}

// secondaryDrop lowers a stage of the target with a percent chance.
func secondaryDrop(stage model.Stage, delta, percent int) map[Event][]*Handler {
	return onHit(func(b *Battle, c *Context) {
		if c.Target.Fainted() || !b.Secondary(c, percent) {
			return
		}
		b.BoostStage(c.Target, c.Source, stage, delta)
	})
}

// inflicts is a status move: the status either lands or the move fails.
func inflicts(status string) map[Event][]*Handler {
	return onHit(func(b *Battle, c *Context) {
		if !b.InflictStatus(c.Target, c.Source, status) {
			b.logf(c.Source, "but it failed")
		}
	})
}

// boosts raises the user's own stages.
func boosts(deltas map[model.Stage]int) map[Event][]*Handler {
	return onHit(func(b *Battle, c *Context) {
		for st := range model.NumStages {
			if d, ok := deltas[model.Stage(st)]; ok {
				b.BoostStage(c.Source, c.Source, model.Stage(st), d)
			}
		}
	})
}

// selfDrop lowers the user's stages after a damaging hit.
func selfDrop(deltas map[model.Stage]int) map[Event][]*Handler {
	return map[Event][]*Handler{
		EventAfterMove: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				if c.Damage == 0 {
					return Keep()
				}
				for st := range model.NumStages {
					if d, ok := deltas[model.Stage(st)]; ok {
						b.BoostStage(c.Source, c.Source, model.Stage(st), d)
					}
				}
				return Done()
			},
		}},
	}
}

// pivots switches the user out after its move.
func pivots() map[Event][]*Handler {
	return map[Event][]*Handler{
		EventAfterMove: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				if c.Source.Fainted() {
					return Keep()
				}
				b.RequestInterrupt(c.Source.Handle.Player, model.InterruptPivot)
				return Done()
			},
		}},
	}
}

// dragsOut forces the target out; the replacement is random.
func dragsOut() map[Event][]*Handler {
	return onHit(func(b *Battle, c *Context) {
		if c.Target.Fainted() {
			return
		}
		if !b.RequestInterrupt(c.Target.Handle.Player, model.InterruptForcedOut) {
			b.logf(c.Source, "but it failed")
		}
	})
}

// startsField starts a field in a manager chosen relative to the user.
func startsField(pick func(b *Battle, user *model.Combatant) *FieldManager, name string, turns int) map[Event][]*Handler {
	return onHit(func(b *Battle, c *Context) {
		if !pick(b, c.Source).Activate(name, turns, c.Source) {
			b.logf(c.Source, "but it failed")
		}
	})
}

// layers adds a hazard layer to the foe's side.
func layers(name string, maxLayers int) map[Event][]*Handler {
	return onHit(func(b *Battle, c *Context) {
		if !foeSide(b, c.Source).Stack(name, maxLayers, c.Source) {
			b.logf(c.Source, "but it failed")
		}
	})
}

func ownSide(b *Battle, u *model.Combatant) *FieldManager { return b.sides[u.Handle.Player] }
func foeSide(b *Battle, u *model.Combatant) *FieldManager {
	return b.sides[model.Opponent(u.Handle.Player)]
}
func weatherField(b *Battle, _ *model.Combatant) *FieldManager { return b.weather }
func terrainField(b *Battle, _ *model.Combatant) *FieldManager { return b.terrain }
func globalField(b *Battle, _ *model.Combatant) *FieldManager { return b.global }

func init() {
	move("fake-out", map[Event][]*Handler{
		EventTryHit: {{
			Role: SourceSelf,
			Func: func(_ *Battle, c *Context, _ any) Result {
				if c.Source.TurnsActive > 1 {
					return Veto(false)
				}
				return Keep()
			},
		}},
		EventHit: onHit(func(b *Battle, c *Context) {
			if !c.Target.Fainted() && !c.Target.Flags.Moved {
				b.AddVolatile(c.Target, VolatileFlinch, 0, c.Source)
			}
		})[EventHit],
	})

	move("body-slam", secondaryStatus(StatusParalysis, 30))
	move("flamethrower", secondaryStatus(StatusBurn, 10))
	move("thunderbolt", secondaryStatus(StatusParalysis, 10))
	move("ice-beam", secondaryStatus(StatusFreeze, 10))
	move("sludge-bomb", secondaryStatus(StatusPoison, 30))
	move("iron-head", secondaryFlinch(30))
	move("rock-slide", secondaryFlinch(30))
	move("moonblast", secondaryDrop(model.StageSpAttack, -1, 30))
	move("shadow-ball", secondaryDrop(model.StageSpDefense, -1, 20))
	move("psychic", secondaryDrop(model.StageSpDefense, -1, 10))

	move("close-combat", selfDrop(map[model.Stage]int{model.StageDefense: -1, model.StageSpDefense: -1}))
	move("draco-meteor", selfDrop(map[model.Stage]int{model.StageSpAttack: -2}))

	move("will-o-wisp", inflicts(StatusBurn))
	move("thunder-wave", map[Event][]*Handler{
		EventTryHit: {{
			Role: SourceSelf,
			Func: func(_ *Battle, c *Context, _ any) Result {
				if data.Effectiveness(c.Move.Type, c.Target.CurrentTypes()) == 0 {
					return Veto(false)
				}
				return Keep()
			},
		}},
		EventHit: inflicts(StatusParalysis)[EventHit],
	})
	move("toxic", inflicts(StatusToxic))
	move("spore", map[Event][]*Handler{
		EventTryHit: {{
			Role: SourceSelf,
			Func: func(_ *Battle, c *Context, _ any) Result {
				if c.Target.HasType("grass") {
					return Veto(false)
				}
				return Keep()
			},
		}},
		EventHit: inflicts(StatusSleep)[EventHit],
	})

	move("hurricane", map[Event][]*Handler{
		EventModifyAccuracy: {{
			Role: SourceSelf,
			Func: func(b *Battle, _ *Context, v any) Result {
				switch b.weather.Current() {
				case Rain:
					return Set(100)
				case Sun:
					return Set(50)
				}
				return Keep()
			},
		}},
	})

	move("u-turn", pivots())
	move("volt-switch", pivots())
	move("dragon-tail", dragsOut())
	move("roar", dragsOut())

	move("swords-dance", boosts(map[model.Stage]int{model.StageAttack: 2}))
	move("nasty-plot", boosts(map[model.Stage]int{model.StageSpAttack: 2}))
	move("dragon-dance", boosts(map[model.Stage]int{model.StageAttack: 1, model.StageSpeed: 1}))

	move("protect", onHit(func(b *Battle, c *Context) {
		b.AddVolatile(c.Source, VolatileProtect, 0, c.Source)
		b.logf(c.Source, "%s protected itself", c.Source.Name())
	}))
	move("recover", onHit(func(b *Battle, c *Context) {
		if b.RestoreHP(c.Source, Fraction(c.Source, 1, 2), "recover") == 0 {
			b.logf(c.Source, "but it failed")
		}
	}))
	move("leech-seed", onHit(func(b *Battle, c *Context) {
		if c.Target.HasType("grass") || !b.AddVolatile(c.Target, VolatileLeechSeed, 0, c.Source) {
			b.logf(c.Source, "but it failed")
		}
	}))
	move("confuse-ray", onHit(func(b *Battle, c *Context) {
		if !b.AddVolatile(c.Target, VolatileConfusion, 2+b.rng.IntN(4), c.Source) {
			b.logf(c.Source, "but it failed")
		}
	}))

	move("stealth-rock", startsField(foeSide, StealthRock, Permanent))
	move("spikes", layers(Spikes, 3))
	move("toxic-spikes", layers(ToxicSpikes, 2))
	move("reflect", startsField(ownSide, Reflect, 5))
	move("light-screen", startsField(ownSide, LightScreen, 5))
	move("tailwind", startsField(ownSide, Tailwind, 4))
	move("gravity", startsField(globalField, Gravity, 5))
	move("trick-room", onHit(func(b *Battle, c *Context) {
		if !b.global.Deactivate(TrickRoom) {
			b.global.Activate(TrickRoom, 5, c.Source)
		}
	}))

	move("sunny-day", startsField(weatherField, Sun, 5))
	move("rain-dance", startsField(weatherField, Rain, 5))
	move("sandstorm", startsField(weatherField, Sand, 5))
	move("snowscape", startsField(weatherField, Snow, 5))
	move("electric-terrain", startsField(terrainField, ElectricTerrain, 5))
	move("grassy-terrain", startsField(terrainField, GrassyTerrain, 5))
	move("psychic-terrain", startsField(terrainField, PsychicTerrain, 5))
	move("misty-terrain", startsField(terrainField, MistyTerrain, 5))

	move(MoveStruggle, map[Event][]*Handler{
		EventAfterMove: {{
			Role: SourceSelf,
			Func: func(b *Battle, c *Context, _ any) Result {
				b.ChipDamage(c.Source, Fraction(c.Source, 1, 4), MoveStruggle)
				return Done()
			},
		}},
	})
}
