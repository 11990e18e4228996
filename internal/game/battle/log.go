package battle

import (
	"fmt"

	"github.com/tmwork1/jpoke/internal/model"
)

// LogEntry is one line of the battle log.
type LogEntry struct {
	Turn    int
	Subject model.Handle
	Effect  string
	Text    string
}

func (e LogEntry) String() string {
	if e.Effect != "" {
		return fmt.Sprintf("[%d] %s {%s} %s", e.Turn, e.Subject, e.Effect, e.Text)
	}
	return fmt.Sprintf("[%d] %s %s", e.Turn, e.Subject, e.Text)
}

// Log appends an entry for the current turn.
func (b *Battle) Log(subject model.Handle, effect, text string) {
	b.log = append(b.log, LogEntry{Turn: b.turn, Subject: subject, Effect: effect, Text: text})
}

func (b *Battle) logf(c *model.Combatant, format string, args ...any) {
	b.Log(c.Handle, "", fmt.Sprintf(format, args...))
}

// Entries returns the battle log.
func (b *Battle) Entries() []LogEntry {
	return b.log
}
