package ports

import (
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	// Schedule arranges for fn to run after d. The returned handle stops it
	// from running if cancelled before it fires.
	Schedule(d time.Duration, fn func()) (domain.CancelHandle, error)
}
