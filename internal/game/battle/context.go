package battle

import "github.com/tmwork1/jpoke/internal/model"

// Context is the short-lived argument of one firing. It is never stored.
type Context struct {
	Source *model.Combatant
	Target *model.Combatant
	Move   *ActiveMove

	// Effect names the status or field an event is about
	// (EventTryStatus, EventDurationCheck).
	Effect string

	// Damage is the HP removed by the current hit, set before EventHit.
	Damage int
}

// Attacker aliases Source.
func (c *Context) Attacker() *model.Combatant { return c.Source }

// Defender aliases Target.
func (c *Context) Defender() *model.Combatant { return c.Target }

func (c *Context) role(r Role) *model.Combatant {
	switch r {
	case RoleSource:
		return c.Source
	case RoleTarget:
		return c.Target
	}
	panic(&ProtocolError{Op: "resolve role", Detail: "unknown role"})
}

// autoContext builds the context for a registration when the caller fired
// without one, so that the handler's own role resolves to the subject.
func (b *Battle) autoContext(spec RoleSpec, subject *model.Combatant) *Context {
	self, other := subject, b.Foe(subject)
	if spec.Side == SideOpponent {
		self, other = other, self
	}
	if spec.Role == RoleSource {
		return &Context{Source: self, Target: other}
	}
	return &Context{Source: other, Target: self}
}

// matches applies the role filter: "self" matches only the subject itself,
// "opponent" matches only the subject's current opponent.
func (b *Battle) matches(spec RoleSpec, c *Context, subject *model.Combatant) bool {
	x := c.role(spec.Role)
	if x == nil {
		return false
	}
	switch spec.Side {
	case SideSelf:
		return x.Handle == subject.Handle
	case SideOpponent:
		foe := b.Foe(subject)
		return foe != nil && x.Handle == foe.Handle
	}
	panic(&ProtocolError{Op: "resolve role", Detail: "unknown side"})
}
