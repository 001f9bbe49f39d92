package infrastructure

import (
	"context"
	"sync"

	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// MemoryHomeRepository is an in-memory implementation of HomeRepository.
// Homes are lost on restart.
type MemoryHomeRepository struct {
	mu    sync.RWMutex
	homes map[domain.PlayerID]domain.Location
}

// NewMemoryHomeRepository creates a new MemoryHomeRepository.
func NewMemoryHomeRepository() *MemoryHomeRepository {
	return &MemoryHomeRepository{
		homes: make(map[domain.PlayerID]domain.Location),
	}
}

// Get returns the player's home, or domain.ErrHomeNotFound.
func (r *MemoryHomeRepository) Get(_ context.Context, id domain.PlayerID) (domain.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	home, ok := r.homes[id]
	if !ok {
		return domain.Location{}, domain.ErrHomeNotFound
	}
	return home, nil
}

// Save records the player's home.
func (r *MemoryHomeRepository) Save(_ context.Context, id domain.PlayerID, home domain.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.homes[id] = home
	return nil
}

// Delete forgets the player's home.
func (r *MemoryHomeRepository) Delete(_ context.Context, id domain.PlayerID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.homes, id)
	return nil
}

// Count returns the number of stored homes (for testing/monitoring).
func (r *MemoryHomeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.homes)
}

// Ensure MemoryHomeRepository implements HomeRepository.
var _ domain.HomeRepository = (*MemoryHomeRepository)(nil)
