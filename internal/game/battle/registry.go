package battle

import (
	"slices"

	"github.com/tmwork1/jpoke/internal/model"
)

// registration binds a handler to a subject. A subject with ActiveSlot means
// "whoever is currently active for that player".
type registration struct {
	h       *Handler
	subject model.Handle
}

type onceKey struct {
	ev      Event
	h       *Handler
	subject model.Handle
}

// Registry maps each event kind to its ordered registrations.
// It holds handles only, so a copy of its slices is a complete clone.
type Registry struct {
	regs  [numEvents][]registration
	spent map[onceKey]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{spent: make(map[onceKey]struct{})}
}

// Register adds (h, subject) to ev. It returns false when the pair is
// already registered or h is a once-handler that already fired for subject.
func (r *Registry) Register(ev Event, h *Handler, subject model.Handle) bool {
	checkEvent(ev)
	if h == nil || h.Func == nil {
		panic(&ProtocolError{Op: "register", Event: ev, Detail: "nil handler"})
	}
	if !h.Role.valid() {
		panic(&ProtocolError{Op: "register", Event: ev, Effect: h.effect, Detail: "unresolvable role specification"})
	}
	if r.index(ev, h, subject) >= 0 {
		return false
	}
	if h.Once {
		if _, ok := r.spent[onceKey{ev, h, subject}]; ok {
			return false
		}
	}
	r.regs[ev] = append(r.regs[ev], registration{h: h, subject: subject})
	return true
}

// Unregister removes (h, subject) from ev. It returns false when absent.
func (r *Registry) Unregister(ev Event, h *Handler, subject model.Handle) bool {
	checkEvent(ev)
	i := r.index(ev, h, subject)
	if i < 0 {
		return false
	}
	r.regs[ev] = slices.Delete(r.regs[ev], i, i+1)
	return true
}

// Registered reports whether (h, subject) is registered for ev.
func (r *Registry) Registered(ev Event, h *Handler, subject model.Handle) bool {
	return r.index(ev, h, subject) >= 0
}

// Count returns the number of registrations for ev.
func (r *Registry) Count(ev Event) int {
	return len(r.regs[ev])
}

// Subjects returns every subject registered for ev, in registration order.
func (r *Registry) Subjects(ev Event) []model.Handle {
	out := make([]model.Handle, len(r.regs[ev]))
	for i, reg := range r.regs[ev] {
		out[i] = reg.subject
	}
	return out
}

func (r *Registry) index(ev Event, h *Handler, subject model.Handle) int {
	for i, reg := range r.regs[ev] {
		if reg.h == h && reg.subject == subject {
			return i
		}
	}
	return -1
}

func (r *Registry) markSpent(ev Event, h *Handler, subject model.Handle) {
	r.spent[onceKey{ev, h, subject}] = struct{}{}
}

func (r *Registry) snapshot(ev Event) []registration {
	return slices.Clone(r.regs[ev])
}

func (r *Registry) clone() *Registry {
	cp := &Registry{spent: make(map[onceKey]struct{}, len(r.spent))}
	for ev := range r.regs {
		cp.regs[ev] = slices.Clone(r.regs[ev])
	}
	for k := range r.spent {
		cp.spent[k] = struct{}{}
	}
	return cp
}

func checkEvent(ev Event) {
	if ev >= numEvents {
		panic(&ProtocolError{Op: "dispatch", Event: ev, Detail: "unknown event kind"})
	}
}
