package domain

// DestinationKind tells where a teleport leads.
type DestinationKind int

const (
	DestinationHome  DestinationKind = iota // the player's bed spawn
	DestinationSpawn                        // world spawn fallback
)

// String returns the kind's catalog key suffix.
func (k DestinationKind) String() string {
	if k == DestinationSpawn {
		return "spawn"
	}
	return "home"
}

// Destination is a resolved teleport target.
type Destination struct {
	Kind     DestinationKind
	Location Location
}
