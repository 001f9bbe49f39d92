package infrastructure

import (
	"context"
	"fmt"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// SpawnProvider finds world spawn points.
type SpawnProvider interface {
	// OverworldSpawn returns the spawn of the overworld that the named world belongs to.
	OverworldSpawn(world string) (domain.Location, error)
}

// DestinationResolver resolves homes from a HomeRepository and spawns from a SpawnProvider.
type DestinationResolver struct {
	homes         domain.HomeRepository
	spawns        SpawnProvider
	centerOnBlock bool
}

// NewDestinationResolver creates a new DestinationResolver.
func NewDestinationResolver(
	homes domain.HomeRepository,
	spawns SpawnProvider,
	centerOnBlock bool,
) *DestinationResolver {
	return &DestinationResolver{
		homes:         homes,
		spawns:        spawns,
		centerOnBlock: centerOnBlock,
	}
}

// Home returns the player's recorded bed spawn.
func (r *DestinationResolver) Home(ctx context.Context, id domain.PlayerID) (domain.Location, error) {
	home, err := r.homes.Get(ctx, id)
	if err != nil {
		return domain.Location{}, err
	}
	return r.adjust(home), nil
}

// Spawn returns the overworld spawn for the player's current world.
func (r *DestinationResolver) Spawn(_ context.Context, from domain.Location) (domain.Location, error) {
	spawn, err := r.spawns.OverworldSpawn(from.World)
	if err != nil {
		return domain.Location{}, fmt.Errorf("failed to resolve spawn of %q: %w", from.World, err)
	}
	return r.adjust(spawn), nil
}

func (r *DestinationResolver) adjust(loc domain.Location) domain.Location {
	if r.centerOnBlock {
		return loc.Centered()
	}
	return loc
}

// Ensure DestinationResolver implements ports.DestinationResolver.
var _ ports.DestinationResolver = (*DestinationResolver)(nil)
