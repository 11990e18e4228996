package battle

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEffect is returned when an ability, item, status, volatile
	// or field name has no effect record.
	ErrUnknownEffect = errors.New("unknown effect")

	// ErrIllegalCommand is returned when a decider picks a command that is
	// not among the offered options.
	ErrIllegalCommand = errors.New("illegal command")

	// ErrBattleOver is returned when a turn is requested after a winner
	// has been decided.
	ErrBattleOver = errors.New("battle is over")
)

// ProtocolError reports a broken handler contract: a malformed result,
// an unresolvable role specification or an unknown event kind.
// It is raised with panic at dispatch; continuing would corrupt state.
type ProtocolError struct {
	Op     string
	Event  Event
	Effect string
	Detail string
}

func (e *ProtocolError) Error() string {
	if e.Effect != "" {
		return fmt.Sprintf("protocol error in %s(%s) from %s: %s", e.Op, e.Event, e.Effect, e.Detail)
	}
	return fmt.Sprintf("protocol error in %s(%s): %s", e.Op, e.Event, e.Detail)
}
