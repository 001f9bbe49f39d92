package infrastructure

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testPlayerID(n byte) domain.PlayerID {
	var id uuid.UUID
	id[15] = n
	return domain.PlayerID(id)
}

type countingHandle struct {
	mu        sync.Mutex
	cancelled int
}

func (h *countingHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cancelled++
}

func (h *countingHandle) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}
