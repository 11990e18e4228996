package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCommand is returned when a command name cannot be parsed.
var ErrBadCommand = errors.New("bad command")

// CommandKind enumerates the decision-point command families.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdSelect
	CmdSwitch
	CmdMove
	CmdTeraMove
	CmdStruggle
)

var commandPrefixes = map[CommandKind]string{
	CmdSelect:   "SELECT_",
	CmdSwitch:   "SWITCH_",
	CmdMove:     "MOVE_",
	CmdTeraMove: "TERA_MOVE_",
}

// Command is one decision issued by a player. Index is a roster index for
// select/switch and a move slot for move commands.
type Command struct {
	Kind  CommandKind
	Index int
}

// Convenience constructors.
func SelectCommand(i int) Command   { return Command{Kind: CmdSelect, Index: i} }
func SwitchCommand(i int) Command   { return Command{Kind: CmdSwitch, Index: i} }
func MoveCommand(i int) Command     { return Command{Kind: CmdMove, Index: i} }
func TeraMoveCommand(i int) Command { return Command{Kind: CmdTeraMove, Index: i} }
func StruggleCommand() Command      { return Command{Kind: CmdStruggle} }

// IsMove reports whether the command executes a move.
func (c Command) IsMove() bool {
	return c.Kind == CmdMove || c.Kind == CmdTeraMove || c.Kind == CmdStruggle
}

func (c Command) String() string {
	switch c.Kind {
	case CmdNone:
		return "NONE"
	case CmdStruggle:
		return "STRUGGLE"
	}
	return commandPrefixes[c.Kind] + strconv.Itoa(c.Index)
}

// ParseCommand parses the String form of a command.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "NONE":
		return Command{}, nil
	case "STRUGGLE":
		return StruggleCommand(), nil
	}
	// TERA_MOVE_ must be tested before MOVE_.
	for _, kind := range []CommandKind{CmdTeraMove, CmdMove, CmdSwitch, CmdSelect} {
		prefix := commandPrefixes[kind]
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(s, prefix))
		if err != nil || idx < 0 {
			return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, s)
		}
		return Command{Kind: kind, Index: idx}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, s)
}
