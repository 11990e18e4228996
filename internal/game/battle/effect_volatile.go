package battle

import (
	"github.com/tmwork1/jpoke/internal/data"
	"github.com/tmwork1/jpoke/internal/model"
)

// Volatile names.
const (
	VolatileFlinch     = "flinch"
	VolatileProtect    = "protect"
	VolatileConfusion  = "confusion"
	VolatileLeechSeed  = "leech-seed"
	VolatileChoiceLock = "choice-lock"
)

// expire removes a one-turn volatile at END_4.
func expire(name string) *Handler {
	return &Handler{
		Role: SourceSelf,
		Func: func(b *Battle, c *Context, _ any) Result {
			b.RemoveVolatile(c.Source, name)
			return Keep()
		},
	}
}

// confusionDamage is a typeless 40-power physical hit against oneself.
func confusionDamage(c *model.Combatant) int {
	atk := model.ApplyStage(c.Stat(model.StatAttack), c.Stage(model.StageAttack))
	def := max(1, model.ApplyStage(c.Stat(model.StatDefense), c.Stage(model.StageDefense)))
	return ((c.Level*2/5+2)*40*atk/def)/50 + 2
}

func init() {
	registerRecord(&EffectRecord{
		Name:  VolatileFlinch,
		Kind:  KindVolatile,
		Flags: []string{flagSilent},
		Handlers: map[Event][]*Handler{
			EventBeforeMove: {{
				Role: SourceSelf,
				Log:  LogAlways,
				Func: func(_ *Battle, c *Context, _ any) Result {
					return Veto(false).WithNote(c.Source.Name() + " flinched")
				},
			}},
			EventEndVolatile: {expire(VolatileFlinch)},
		},
	})

	registerRecord(&EffectRecord{
		Name:  VolatileProtect,
		Kind:  KindVolatile,
		Flags: []string{flagSilent},
		Handlers: map[Event][]*Handler{
			EventTryHit: {{
				Role: TargetSelf,
				Log:  LogOnSuccess,
				Func: func(_ *Battle, c *Context, _ any) Result {
					if c.Move.HasFlag(data.FlagBypassProtect) {
						return Keep()
					}
					return Veto(false).WithNote(c.Target.Name() + " protected itself")
				},
			}},
			EventEndVolatile: {expire(VolatileProtect)},
		},
	})

	registerRecord(&EffectRecord{
		Name: VolatileConfusion,
		Kind: KindVolatile,
		Handlers: map[Event][]*Handler{
			EventBeforeMove: {{
				Role: SourceSelf,
				Func: func(b *Battle, c *Context, _ any) Result {
					self := c.Source
					v := self.Volatiles[VolatileConfusion]
					v.Counter--
					if v.Counter <= 0 {
						b.RemoveVolatile(self, VolatileConfusion)
						return Keep()
					}
					if !b.chance(ChanceStatus, 1, 3) {
						return Keep()
					}
					b.logf(self, "%s hurt itself in its confusion", self.Name())
					b.ChipDamage(self, confusionDamage(self), VolatileConfusion)
					return Veto(false)
				},
			}},
		},
	})

	registerRecord(&EffectRecord{
		Name: VolatileLeechSeed,
		Kind: KindVolatile,
		Handlers: map[Event][]*Handler{
			EventEndResidual: {{
				Role: SourceSelf,
				Func: func(b *Battle, c *Context, _ any) Result {
					seeded := c.Source
					drained := b.ChipDamage(seeded, Fraction(seeded, 1, 8), VolatileLeechSeed)
					if foe := b.Foe(seeded); foe != nil && !foe.Fainted() {
						b.RestoreHP(foe, drained, VolatileLeechSeed)
					}
					return Done()
				},
			}},
		},
	})

	// choice-lock restricts the offered move commands; it has no handlers.
	registerRecord(&EffectRecord{
		Name:  VolatileChoiceLock,
		Kind:  KindVolatile,
		Flags: []string{flagSilent},
	})
}
