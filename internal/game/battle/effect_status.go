package battle

import "github.com/tmwork1/jpoke/internal/data"

// Shared record flags.
const (
	flagSilent = "silent" // volatiles that do not log their start and end
)

// chain applies a modifier on the 4096 scale to an int event value.
func chain(v any, mod int) int {
	return (v.(int)*mod + 2048) / 4096
}

func residual(status string, num, den int) *Handler {
	return &Handler{
		Role: SourceSelf,
		Func: func(b *Battle, c *Context, _ any) Result {
			b.ChipDamage(c.Source, Fraction(c.Source, num, den), status)
			return Done()
		},
	}
}

func init() {
	registerRecord(&EffectRecord{
		Name: StatusPoison,
		Kind: KindStatus,
		Handlers: map[Event][]*Handler{
			EventEndResidual: {residual(StatusPoison, 1, 8)},
		},
	})

	registerRecord(&EffectRecord{
		Name: StatusToxic,
		Kind: KindStatus,
		Handlers: map[Event][]*Handler{
			EventEndResidual: {{
				Role: SourceSelf,
				Func: func(b *Battle, c *Context, _ any) Result {
					n := c.Source.Status.Counter
					b.ChipDamage(c.Source, Fraction(c.Source, n, 16), StatusToxic)
					c.Source.Status.Counter = min(n+1, 15)
					return Done()
				},
			}},
		},
	})

	registerRecord(&EffectRecord{
		Name: StatusBurn,
		Kind: KindStatus,
		Handlers: map[Event][]*Handler{
			EventEndResidual: {residual(StatusBurn, 1, 16)},
			EventDamageModifier: {{
				Role: SourceSelf,
				Func: func(_ *Battle, c *Context, v any) Result {
					if c.Move.Category != data.Physical {
						return Keep()
					}
					return Set(chain(v, 2048))
				},
			}},
		},
	})

	registerRecord(&EffectRecord{
		Name: StatusParalysis,
		Kind: KindStatus,
		Handlers: map[Event][]*Handler{
			EventModifySpeed: {{
				Role: SourceSelf,
				Func: func(_ *Battle, _ *Context, v any) Result {
					return Set(v.(int) / 2)
				},
			}},
			EventBeforeMove: {{
				Role: SourceSelf,
				Log:  LogOnSuccess,
				Func: func(b *Battle, c *Context, _ any) Result {
					if !b.chance(ChanceStatus, 1, 4) {
						return Keep()
					}
					return Veto(false).WithNote(c.Source.Name() + " is fully paralyzed")
				},
			}},
		},
	})

	registerRecord(&EffectRecord{
		Name: StatusSleep,
		Kind: KindStatus,
		Handlers: map[Event][]*Handler{
			EventBeforeMove: {{
				Role: SourceSelf,
				Log:  LogOnSuccess,
				Func: func(b *Battle, c *Context, _ any) Result {
					if c.Source.Status.Counter <= 0 {
						b.CureStatus(c.Source)
						return Keep()
					}
					c.Source.Status.Counter--
					return Veto(false).WithNote(c.Source.Name() + " is fast asleep")
				},
			}},
		},
	})

	registerRecord(&EffectRecord{
		Name: StatusFreeze,
		Kind: KindStatus,
		Handlers: map[Event][]*Handler{
			EventBeforeMove: {{
				Role: SourceSelf,
				Log:  LogOnSuccess,
				Func: func(b *Battle, c *Context, _ any) Result {
					if b.chance(ChanceStatus, 1, 5) {
						b.CureStatus(c.Source)
						return Keep()
					}
					return Veto(false).WithNote(c.Source.Name() + " is frozen solid")
				},
			}},
		},
	})
}
