package ports

import (
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// WarmupEffects shows a running warmup to the players around it.
type WarmupEffects interface {
	// Show displays effects at the player until the warmup ends or d elapses.
	// Must not block.
	Show(id domain.PlayerID, d time.Duration)
}
