package infrastructure

import (
	"sync"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// MemoryWarmupRegistry is an in-memory implementation of WarmupRegistry.
type MemoryWarmupRegistry struct {
	mu      sync.RWMutex
	entries map[domain.PlayerID]domain.WarmupEntry
}

// NewMemoryWarmupRegistry creates a new MemoryWarmupRegistry.
func NewMemoryWarmupRegistry() *MemoryWarmupRegistry {
	return &MemoryWarmupRegistry{
		entries: make(map[domain.PlayerID]domain.WarmupEntry),
	}
}

// Put stores the entry, replacing any existing entry for the player.
func (r *MemoryWarmupRegistry) Put(entry domain.WarmupEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.PlayerID] = entry
}

// IsWarmingUp reports whether the player has an entry.
func (r *MemoryWarmupRegistry) IsWarmingUp(id domain.PlayerID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}

// Get returns the player's entry, if any.
func (r *MemoryWarmupRegistry) Get(id domain.PlayerID) (domain.WarmupEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	return entry, ok
}

// Remove deletes and returns the player's entry.
func (r *MemoryWarmupRegistry) Remove(id domain.PlayerID) (domain.WarmupEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	return entry, ok
}

// RemoveIf deletes the player's entry only if it holds the given handle.
func (r *MemoryWarmupRegistry) RemoveIf(id domain.PlayerID, handle domain.CancelHandle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok || entry.Handle != handle {
		return false
	}
	delete(r.entries, id)
	return true
}

// Cancel removes the player's entry and cancels its handle.
// The handle is cancelled outside the lock.
func (r *MemoryWarmupRegistry) Cancel(id domain.PlayerID) bool {
	entry, ok := r.Remove(id)
	if !ok {
		return false
	}
	if entry.Handle != nil {
		entry.Handle.Cancel()
	}
	return true
}

// CancelIf removes and cancels the player's entry only if it was armed at or
// before cutoff. The check and the removal happen under one lock.
func (r *MemoryWarmupRegistry) CancelIf(id domain.PlayerID, cutoff time.Time) bool {
	r.mu.Lock()
	entry, ok := r.entries[id]
	if !ok || entry.ArmedAt.After(cutoff) {
		r.mu.Unlock()
		return false
	}
	delete(r.entries, id)
	r.mu.Unlock()

	if entry.Handle != nil {
		entry.Handle.Cancel()
	}
	return true
}

// Count returns the number of warmups in progress (for testing/monitoring).
func (r *MemoryWarmupRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Ensure MemoryWarmupRegistry implements WarmupRegistry.
var _ domain.WarmupRegistry = (*MemoryWarmupRegistry)(nil)
