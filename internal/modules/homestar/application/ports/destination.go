package ports

import (
	"context"

	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// DestinationResolver finds where a teleport leads.
type DestinationResolver interface {
	// Home returns the player's bed spawn, or domain.ErrHomeNotFound.
	Home(ctx context.Context, id domain.PlayerID) (domain.Location, error)

	// Spawn returns the spawn of the overworld matching the given world.
	Spawn(ctx context.Context, from domain.Location) (domain.Location, error)
}

// WorldPolicy decides in which worlds HomeStars work.
type WorldPolicy interface {
	Enabled(world string) bool
}
