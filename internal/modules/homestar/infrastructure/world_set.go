package infrastructure

import (
	"fmt"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// Dimension names used in world keys.
const (
	DimensionOverworld = "overworld"
	DimensionNether    = "nether"
	DimensionEnd       = "end"
)

// WorldKey identifies w among the worlds of a server. The worlds of one
// server share the level name, so the dimension is part of the key.
func WorldKey(w *world.World) string {
	return w.Name() + "/" + dimensionName(w.Dimension())
}

func dimensionName(dim world.Dimension) string {
	switch dim {
	case world.Nether:
		return DimensionNether
	case world.End:
		return DimensionEnd
	default:
		return DimensionOverworld
	}
}

// WorldSet resolves the worlds of a server by WorldKey.
type WorldSet struct {
	overworld *world.World
	worlds    []*world.World
}

// NewWorldSet creates a WorldSet. The overworld is where spawn fallbacks lead
// for worlds of other dimensions.
func NewWorldSet(overworld *world.World, others ...*world.World) *WorldSet {
	worlds := []*world.World{overworld}
	for _, w := range others {
		if w != nil {
			worlds = append(worlds, w)
		}
	}
	return &WorldSet{
		overworld: overworld,
		worlds:    worlds,
	}
}

// ByKey returns the world with the given WorldKey.
func (s *WorldSet) ByKey(key string) (*world.World, bool) {
	for _, w := range s.worlds {
		if WorldKey(w) == key {
			return w, true
		}
	}
	return nil, false
}

// OverworldSpawn returns the spawn of the keyed world if it is an overworld,
// or the spawn of the main overworld for the nether and the end.
func (s *WorldSet) OverworldSpawn(key string) (domain.Location, error) {
	w, ok := s.ByKey(key)
	if !ok {
		return domain.Location{}, fmt.Errorf("unknown world %q", key)
	}
	if w.Dimension() != world.Overworld {
		w = s.overworld
	}
	return domain.Location{
		World:    WorldKey(w),
		Position: w.Spawn().Vec3Middle(),
	}, nil
}

// Ensure WorldSet implements SpawnProvider.
var _ SpawnProvider = (*WorldSet)(nil)
