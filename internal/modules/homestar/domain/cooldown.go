package domain

import "time"

// CooldownTracker records when each player may teleport again.
type CooldownTracker interface {
	// Start begins a cooldown of the given duration, replacing any prior one.
	Start(id PlayerID, duration time.Duration)

	// Remaining returns the time left, or zero if absent or expired.
	Remaining(id PlayerID) time.Duration

	// RemainingSeconds returns the whole seconds left, truncated toward zero.
	RemainingSeconds(id PlayerID) int64

	// Clear removes the player's cooldown.
	Clear(id PlayerID)
}
