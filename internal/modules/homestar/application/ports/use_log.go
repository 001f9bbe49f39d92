package ports

import (
	"context"
	"time"
)

// UseEntry describes one completed HomeStar use.
type UseEntry struct {
	PlayerName  string
	Destination string
	World       string
	X, Y, Z     float64
	At          time.Time
}

// UseLog records completed HomeStar uses somewhere outside the game.
type UseLog interface {
	Record(ctx context.Context, entry UseEntry) error
}
