package battle

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tmwork1/jpoke/internal/model"
)

type candidate struct {
	reg     registration
	ctx     *Context
	subject *model.Combatant
	speed   int
}

// Fire dispatches ev. With a nil ctx a context is built per registration so
// that the registration's own role resolves to its subject. Registrations
// whose role does not match are skipped; the rest run in (ascending
// priority, descending subject speed) order, threading one value. Fainted
// subjects still take part: a handler that needs a live subject checks it.
//
// Iteration runs over a snapshot taken here, so handlers may register or
// unregister freely. A registration removed mid-dispatch is not invoked.
func (b *Battle) Fire(ev Event, ctx *Context, initial any) any {
	checkEvent(ev)
	b.checkValue(ev, "initial value", "", initial)

	snapshot := b.reg.snapshot(ev)
	if len(snapshot) == 0 {
		return initial
	}

	cands := make([]candidate, 0, len(snapshot))
	for _, reg := range snapshot {
		subject := b.Combatant(reg.subject)
		if subject == nil {
			continue
		}
		c := ctx
		if c == nil {
			c = b.autoContext(reg.h.Role, subject)
		}
		if !b.matches(reg.h.Role, c, subject) {
			continue
		}
		cands = append(cands, candidate{reg: reg, ctx: c, subject: subject})
	}
	if len(cands) > 1 {
		for i := range cands {
			cands[i].speed = b.orderingSpeed(ev, cands[i].subject)
		}
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].reg.h.Priority != cands[j].reg.h.Priority {
				return cands[i].reg.h.Priority < cands[j].reg.h.Priority
			}
			return cands[i].speed > cands[j].speed
		})
	}

	value := initial
	var stopped map[model.Handle]bool
	for _, cand := range cands {
		h := cand.reg.h
		if stopped[cand.subject.Handle] {
			continue
		}
		if !b.reg.Registered(ev, h, cand.reg.subject) {
			continue
		}

		res := h.Func(b, cand.ctx, value)
		b.checkResult(ev, h, res)
		if res.Value != nil {
			value = res.Value
		}
		if h.Once {
			b.reg.Unregister(ev, h, cand.reg.subject)
			b.reg.markSpent(ev, h, cand.reg.subject)
		}
		b.logHandler(ev, h, cand.subject, res)

		switch res.Control {
		case StopSubject:
			if stopped == nil {
				stopped = make(map[model.Handle]bool, 2)
			}
			stopped[cand.subject.Handle] = true
		case StopEvent:
			return value
		}
	}
	return value
}

// FireAction fires an event that carries no value.
func (b *Battle) FireAction(ev Event, ctx *Context) {
	b.Fire(ev, ctx, nil)
}

// FireBool fires a bool-valued event.
func (b *Battle) FireBool(ev Event, ctx *Context, initial bool) bool {
	return b.Fire(ev, ctx, initial).(bool)
}

// FireInt fires an int-valued event.
func (b *Battle) FireInt(ev Event, ctx *Context, initial int) int {
	return b.Fire(ev, ctx, initial).(int)
}

// FireFloat fires a float64-valued event.
func (b *Battle) FireFloat(ev Event, ctx *Context, initial float64) float64 {
	return b.Fire(ev, ctx, initial).(float64)
}

// orderingSpeed is the speed tie-break used to order registrations. The
// speed event itself orders by staged stat to avoid recursing into itself.
func (b *Battle) orderingSpeed(ev Event, c *model.Combatant) int {
	if ev == EventModifySpeed {
		return model.ApplyStage(c.Stat(model.StatSpeed), c.Stage(model.StageSpeed))
	}
	return b.EffectiveSpeed(c)
}

func (b *Battle) checkResult(ev Event, h *Handler, res Result) {
	if res.Control > StopEvent {
		panic(&ProtocolError{Op: "fire", Event: ev, Effect: h.effect,
			Detail: fmt.Sprintf("control signal %d out of range", res.Control)})
	}
	if res.Value != nil {
		b.checkValue(ev, "handler result", h.effect, res.Value)
	}
}

func (b *Battle) checkValue(ev Event, what, effect string, v any) {
	ok := false
	switch ev.kind() {
	case kindNone:
		ok = v == nil
	case kindBool:
		_, ok = v.(bool)
	case kindInt:
		_, ok = v.(int)
	case kindFloat:
		_, ok = v.(float64)
	}
	if !ok {
		panic(&ProtocolError{Op: "fire", Event: ev, Effect: effect,
			Detail: fmt.Sprintf("%s %v (%T) is not %s", what, v, v, ev.kind())})
	}
}

func (b *Battle) logHandler(ev Event, h *Handler, subject *model.Combatant, res Result) {
	logged := false
	switch h.Log {
	case LogAlways:
		logged = true
	case LogOnSuccess:
		logged = res.Success
	case LogOnFailure:
		logged = !res.Success
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("handler fired",
			"event", ev.String(),
			"effect", h.effect,
			"subject", subject.Handle.String(),
			"success", res.Success,
			"logged", logged)
	}

	if !logged {
		return
	}
	note := res.Note
	if note == "" {
		note = h.effect + " activated"
	}
	b.Log(subject.Handle, h.effect, note)
	if h.Reveal {
		switch h.kind {
		case KindAbility:
			subject.AbilityRevealed = true
		case KindItem:
			subject.ItemRevealed = true
		}
	}
}
