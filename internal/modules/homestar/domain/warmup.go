package domain

import "time"

// CancelHandle stops a scheduled action from firing.
// Cancel must be idempotent and harmless after the action already fired.
type CancelHandle interface {
	Cancel()
}

// WarmupEntry is a teleport request in progress.
type WarmupEntry struct {
	PlayerID PlayerID
	Handle   CancelHandle
	ArmedAt  time.Time
}

// WarmupRegistry tracks the in-progress teleport of each player.
// A player has at most one entry at any time.
type WarmupRegistry interface {
	// Put stores the entry, replacing any existing entry for the player.
	Put(entry WarmupEntry)

	// IsWarmingUp reports whether the player has an entry.
	IsWarmingUp(id PlayerID) bool

	// Get returns the player's entry, if any.
	Get(id PlayerID) (WarmupEntry, bool)

	// Remove deletes and returns the player's entry. Removing an absent player is a no-op.
	Remove(id PlayerID) (WarmupEntry, bool)

	// RemoveIf deletes the player's entry only if it holds the given handle.
	RemoveIf(id PlayerID, handle CancelHandle) bool

	// Cancel removes the player's entry and cancels its handle.
	// Returns false if the player had no entry.
	Cancel(id PlayerID) bool

	// CancelIf is Cancel restricted to an entry armed at or before cutoff.
	// Returns false if the player had no such entry.
	CancelIf(id PlayerID, cutoff time.Time) bool
}
