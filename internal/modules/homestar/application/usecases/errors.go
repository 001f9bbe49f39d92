package usecases

import "errors"

// Domain errors for the homestar module.
var (
	// ErrOnCooldown is returned when the player used a HomeStar too recently.
	ErrOnCooldown = errors.New("teleport is on cooldown")

	// ErrAlreadyWarmingUp is returned when the player already has a teleport in progress.
	ErrAlreadyWarmingUp = errors.New("teleport already in progress")

	// ErrWorldDisabled is returned when HomeStars do not work in the player's world.
	ErrWorldDisabled = errors.New("homestar is disabled in this world")

	// ErrNoDestination is returned when neither a home nor a fallback spawn is available.
	ErrNoDestination = errors.New("no destination available")

	// ErrBelowMinimumDistance is returned when the player is already close to the destination.
	ErrBelowMinimumDistance = errors.New("too close to destination")

	// ErrSchedulerUnavailable is returned when the warmup could not be scheduled.
	ErrSchedulerUnavailable = errors.New("scheduler unavailable")

	// ErrPlayerNotFound is returned when the requested player is not online.
	ErrPlayerNotFound = errors.New("player not found")
)
