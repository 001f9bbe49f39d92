package domain

import "time"

// MessageCooldownTracker suppresses repeats of the same message to a player.
type MessageCooldownTracker interface {
	// ShouldShow reports whether the message may be shown now and, if so,
	// records the time. A repeatDelay <= 0 never suppresses.
	ShouldShow(id PlayerID, kind MessageKind, repeatDelay time.Duration) bool

	// Clear forgets all entries of the player.
	Clear(id PlayerID)
}
