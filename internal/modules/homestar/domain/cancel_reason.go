package domain

// CancelReason is the trigger that interrupted a warmup.
type CancelReason string

const (
	CancelInteraction CancelReason = "interaction"
	CancelDamage      CancelReason = "damage"
	CancelMovement    CancelReason = "movement"
	CancelQuit        CancelReason = "quit"
	CancelDeath       CancelReason = "death"
)

// Message returns the notification sent for the reason.
// Quit and death are silent: the player is gone.
func (r CancelReason) Message() (MessageKind, bool) {
	switch r {
	case CancelInteraction:
		return MessageTeleportCancelledInteraction, true
	case CancelDamage:
		return MessageTeleportCancelledDamage, true
	case CancelMovement:
		return MessageTeleportCancelledMovement, true
	default:
		return "", false
	}
}

// Unconditional reports whether the reason always cancels, regardless of config.
func (r CancelReason) Unconditional() bool {
	return r == CancelQuit || r == CancelDeath
}
