package infrastructure

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// MemoryCooldownTracker is an in-memory implementation of CooldownTracker.
// Expired entries stay until swept or overwritten; reads always compare
// against the stored expiry.
type MemoryCooldownTracker struct {
	mu      sync.RWMutex
	clock   ports.Clock
	expires map[domain.PlayerID]time.Time
}

// NewMemoryCooldownTracker creates a new MemoryCooldownTracker.
func NewMemoryCooldownTracker(clock ports.Clock) *MemoryCooldownTracker {
	return &MemoryCooldownTracker{
		clock:   clock,
		expires: make(map[domain.PlayerID]time.Time),
	}
}

// Start begins a cooldown of the given duration, replacing any prior one.
func (t *MemoryCooldownTracker) Start(id domain.PlayerID, duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.expires[id] = t.clock.Now().Add(duration)
}

// Remaining returns the time left, or zero if absent or expired.
func (t *MemoryCooldownTracker) Remaining(id domain.PlayerID) time.Duration {
	t.mu.RLock()
	expiresAt, ok := t.expires[id]
	t.mu.RUnlock()

	if !ok {
		return 0
	}
	return max(0, expiresAt.Sub(t.clock.Now()))
}

// RemainingSeconds returns the whole seconds left, truncated toward zero.
func (t *MemoryCooldownTracker) RemainingSeconds(id domain.PlayerID) int64 {
	return int64(t.Remaining(id) / time.Second)
}

// Clear removes the player's cooldown.
func (t *MemoryCooldownTracker) Clear(id domain.PlayerID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.expires, id)
}

// Sweep removes expired entries and returns how many were removed.
func (t *MemoryCooldownTracker) Sweep() int {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for id, expiresAt := range t.expires {
		if !expiresAt.After(now) {
			delete(t.expires, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps expired entries every interval until ctx is done.
func (t *MemoryCooldownTracker) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := t.Sweep(); n > 0 {
				slog.Debug("swept expired cooldowns", "count", n)
			}
		}
	}
}

// Count returns the number of stored cooldowns, expired or not (for testing/monitoring).
func (t *MemoryCooldownTracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.expires)
}

// Ensure MemoryCooldownTracker implements CooldownTracker.
var _ domain.CooldownTracker = (*MemoryCooldownTracker)(nil)
