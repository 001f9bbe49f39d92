package domain

import (
	"context"
	"errors"
)

// ErrHomeNotFound is returned when a player has no recorded home.
var ErrHomeNotFound = errors.New("home not found")

// HomeRepository stores the bed spawn of each player.
type HomeRepository interface {
	// Get returns the player's home, or ErrHomeNotFound.
	Get(ctx context.Context, id PlayerID) (Location, error)

	// Save records the player's home, replacing any previous one.
	Save(ctx context.Context, id PlayerID, home Location) error

	// Delete forgets the player's home.
	Delete(ctx context.Context, id PlayerID) error
}
