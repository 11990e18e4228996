package model

// Interrupt is a pending forced action on one side that pre-empts normal
// phase processing until resolved. At most one is pending per player.
type Interrupt uint8

const (
	InterruptNone      Interrupt = iota
	InterruptHitSwitch           // holder was knocked out of battle by a hit (eject button); owner picks
	InterruptForcedOut           // dragged out by an attack (roar); replacement is random
	InterruptPivot               // user chose to pivot out after its move (u-turn)
	InterruptEmergency           // self-preservation after dropping below half HP
	InterruptFainted             // active fainted and must be replaced
	InterruptRequested           // pending replacement request from the driver
)

var interruptNames = [...]string{"none", "hit_switch", "forced_out", "pivot", "emergency", "fainted", "requested"}

func (i Interrupt) String() string {
	if int(i) < len(interruptNames) {
		return interruptNames[i]
	}
	return "interrupt?"
}
