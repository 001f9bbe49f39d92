package domain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// PlayerID is the stable identifier of a player.
// Display names can change between sessions, so state is never keyed by name.
type PlayerID uuid.UUID

// ParsePlayerID parses the canonical UUID text form of a player ID.
func ParsePlayerID(s string) (PlayerID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PlayerID{}, err
	}
	return PlayerID(id), nil
}

// UUID returns the underlying UUID.
func (id PlayerID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// String returns the canonical UUID text form.
func (id PlayerID) String() string {
	return uuid.UUID(id).String()
}

// Location is a position inside a named world.
type Location struct {
	World    string
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

// SameWorld reports whether both locations are in the same world.
func (l Location) SameWorld(other Location) bool {
	return l.World == other.World
}

// Distance returns the euclidean distance between the two positions.
// The result is only meaningful when SameWorld is true.
func (l Location) Distance(other Location) float64 {
	return l.Position.Sub(other.Position).Len()
}

// Centered returns the location moved to the horizontal center of its block.
func (l Location) Centered() Location {
	centered := l
	centered.Position = mgl64.Vec3{
		math.Floor(l.Position.X()) + 0.5,
		l.Position.Y(),
		math.Floor(l.Position.Z()) + 0.5,
	}
	return centered
}
