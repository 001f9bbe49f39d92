package infrastructure

import (
	"sync"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

type messageKey struct {
	player domain.PlayerID
	kind   domain.MessageKind
}

// MemoryMessageCooldownTracker is an in-memory implementation of MessageCooldownTracker.
type MemoryMessageCooldownTracker struct {
	mu        sync.Mutex
	clock     ports.Clock
	lastShown map[messageKey]time.Time
}

// NewMemoryMessageCooldownTracker creates a new MemoryMessageCooldownTracker.
func NewMemoryMessageCooldownTracker(clock ports.Clock) *MemoryMessageCooldownTracker {
	return &MemoryMessageCooldownTracker{
		clock:     clock,
		lastShown: make(map[messageKey]time.Time),
	}
}

// ShouldShow reports whether the message may be shown now and records the time if so.
func (t *MemoryMessageCooldownTracker) ShouldShow(
	id domain.PlayerID,
	kind domain.MessageKind,
	repeatDelay time.Duration,
) bool {
	if repeatDelay <= 0 {
		return true
	}

	now := t.clock.Now()
	key := messageKey{player: id, kind: kind}

	t.mu.Lock()
	defer t.mu.Unlock()

	if last, ok := t.lastShown[key]; ok && now.Sub(last) < repeatDelay {
		return false
	}
	t.lastShown[key] = now
	return true
}

// Clear forgets all entries of the player.
func (t *MemoryMessageCooldownTracker) Clear(id domain.PlayerID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key := range t.lastShown {
		if key.player == id {
			delete(t.lastShown, key)
		}
	}
}

// Count returns the number of stored entries (for testing/monitoring).
func (t *MemoryMessageCooldownTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.lastShown)
}

// Ensure MemoryMessageCooldownTracker implements MessageCooldownTracker.
var _ domain.MessageCooldownTracker = (*MemoryMessageCooldownTracker)(nil)
