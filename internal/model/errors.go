package model

import "fmt"

// InvariantError reports a violated engine invariant (out-of-range stage,
// two actives for one player, ...). It is raised with panic: it always
// means an engine bug, never a legal game outcome.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
}

func violate(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
