package ports

import (
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// Player is an online player as seen by the use cases.
// Implementations wrap the host's live player object and must only be used
// on the timeline the player belongs to.
type Player interface {
	ID() domain.PlayerID
	Name() string

	// Location returns the player's current world and position.
	Location() domain.Location

	// SendMessage shows a chat message to the player.
	SendMessage(text string)

	// PlaySound plays a sound effect to the player only.
	PlaySound(sound domain.SoundKind)

	// ConsumeHomeStar removes one HomeStar from the player's inventory.
	// Returns false if the player holds none.
	ConsumeHomeStar() bool

	// RestoreHomeStar gives one HomeStar back. Returns false if it did not fit.
	RestoreHomeStar() bool

	// Teleport moves the player to the location, across worlds if needed.
	// arrived runs with the player on the destination's timeline once the
	// player is there. It may run after Teleport returns.
	Teleport(to domain.Location, arrived func(Player)) error
}

// PlayerExecutor runs work on the timeline of an online player.
type PlayerExecutor interface {
	// Exec runs fn with the player on its timeline.
	// Returns false if the player is no longer online.
	Exec(id domain.PlayerID, fn func(Player)) bool
}

// OnlinePlayer is a read-only snapshot of an online player.
type OnlinePlayer struct {
	ID   domain.PlayerID
	Name string
}

// PlayerLookup finds online players.
type PlayerLookup interface {
	// PlayerByName returns the online player with the given name.
	PlayerByName(name string) (OnlinePlayer, bool)
}
