package model

import "fmt"

// ActiveSlot is the roster slot of a Handle that means "whoever is
// currently active for that player".
const ActiveSlot = -1

// Handle is a stable reference to a combatant: (player index, roster index).
// Handles survive Battle cloning unchanged, which is what lets registrations
// and fields point into the player arenas without pointer remapping.
type Handle struct {
	Player int
	Slot   int
}

// ActiveOf returns the live "current active of player p" handle.
func ActiveOf(p int) Handle {
	return Handle{Player: p, Slot: ActiveSlot}
}

// IsActiveRef reports whether h refers to a side rather than a fixed combatant.
func (h Handle) IsActiveRef() bool {
	return h.Slot == ActiveSlot
}

func (h Handle) String() string {
	if h.IsActiveRef() {
		return fmt.Sprintf("p%d:active", h.Player+1)
	}
	return fmt.Sprintf("p%d:%d", h.Player+1, h.Slot)
}

// Opponent returns the index of the other player.
func Opponent(p int) int {
	return 1 - p
}
