package battle

// Role names a slot of a Context.
type Role uint8

const (
	RoleSource Role = iota
	RoleTarget

	RoleAttacker = RoleSource
	RoleDefender = RoleTarget
)

// Side says how the combatant in a role must relate to a registration's
// subject for the handler to run.
type Side uint8

const (
	SideSelf     Side = iota // the role is the subject itself
	SideOpponent             // the role is the subject's current opponent
)

// RoleSpec is an abstract pointer ("the source", "the target's opponent")
// resolved against a Context at dispatch time.
type RoleSpec struct {
	Role Role
	Side Side
}

// Common role specifications.
var (
	SourceSelf     = RoleSpec{Role: RoleSource, Side: SideSelf}
	SourceOpponent = RoleSpec{Role: RoleSource, Side: SideOpponent}
	TargetSelf     = RoleSpec{Role: RoleTarget, Side: SideSelf}
	TargetOpponent = RoleSpec{Role: RoleTarget, Side: SideOpponent}
)

func (r RoleSpec) valid() bool {
	return r.Role <= RoleTarget && r.Side <= SideOpponent
}

// Control is the dispatch signal returned with every handler result.
type Control uint8

const (
	Continue    Control = iota // run the next registration
	StopSubject                // skip the rest of this subject's handlers
	StopEvent                  // return the current value immediately
)

// LogPolicy gates whether a handler invocation is written to the battle log.
type LogPolicy uint8

const (
	LogNever LogPolicy = iota
	LogAlways
	LogOnSuccess
	LogOnFailure
)

// Result is what a handler returns. A nil Value keeps the threaded value.
// Success drives the OnSuccess/OnFailure log policies.
type Result struct {
	Value   any
	Success bool
	Control Control
	Note    string // optional log text; defaults to "<effect> activated"
}

// Keep leaves the threaded value unchanged and reports no activation.
func Keep() Result { return Result{} }

// Set replaces the threaded value.
func Set(v any) Result { return Result{Value: v, Success: true} }

// Done reports an activation without changing the value.
func Done() Result { return Result{Success: true} }

// Veto stops the whole event with v as the final value.
func Veto(v any) Result { return Result{Value: v, Success: true, Control: StopEvent} }

// WithNote attaches a log line to a result.
func (r Result) WithNote(note string) Result {
	r.Note = note
	return r
}

// HandlerFunc is the function half of a handler. v carries the value
// threaded through the event (nil for action events).
type HandlerFunc func(b *Battle, c *Context, v any) Result

// Handler is an immutable (function, role, priority, once, log policy) tuple.
// Handlers are shared between clones; they must never capture battle state.
type Handler struct {
	Func     HandlerFunc
	Role     RoleSpec
	Priority int
	Once     bool
	Log      LogPolicy
	Reveal   bool

	effect string
	kind   EffectKind
}

// Effect returns the name of the record the handler belongs to.
func (h *Handler) Effect() string { return h.effect }
