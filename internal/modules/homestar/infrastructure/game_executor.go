package infrastructure

import (
	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/particle"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// GameExecutor runs work on the world of online players of a dragonfly server.
// Exec blocks until the work ran, so it must not be called from inside a transaction.
type GameExecutor struct {
	srv    *server.Server
	worlds *WorldSet
}

// NewGameExecutor creates a new GameExecutor.
func NewGameExecutor(srv *server.Server, worlds *WorldSet) *GameExecutor {
	return &GameExecutor{srv: srv, worlds: worlds}
}

// Exec runs fn with the player inside its world's transaction.
func (e *GameExecutor) Exec(id domain.PlayerID, fn func(ports.Player)) bool {
	handle, ok := e.srv.Player(id.UUID())
	if !ok {
		return false
	}

	ran := false
	handle.ExecWorld(func(_ *world.Tx, ent world.Entity) {
		if p, ok := ent.(*player.Player); ok {
			ran = true
			fn(NewGamePlayer(p, e.worlds))
		}
	})
	return ran
}

// EmitParticles shows the ender signal effect around the player's body.
func (e *GameExecutor) EmitParticles(id domain.PlayerID) bool {
	handle, ok := e.srv.Player(id.UUID())
	if !ok {
		return false
	}

	return handle.ExecWorld(func(tx *world.Tx, ent world.Entity) {
		tx.AddParticle(ent.Position().Add(mgl64.Vec3{0, 1, 0}), particle.EndermanTeleport{})
	})
}

// PlayerByName finds an online player by name.
func (e *GameExecutor) PlayerByName(name string) (ports.OnlinePlayer, bool) {
	handle, ok := e.srv.PlayerByName(name)
	if !ok {
		return ports.OnlinePlayer{}, false
	}

	var found ports.OnlinePlayer
	handle.ExecWorld(func(_ *world.Tx, ent world.Entity) {
		if p, ok := ent.(*player.Player); ok {
			found = ports.OnlinePlayer{ID: domain.PlayerID(p.UUID()), Name: p.Name()}
		}
	})
	return found, found.Name != ""
}

var (
	_ ports.PlayerExecutor = (*GameExecutor)(nil)
	_ ports.PlayerLookup   = (*GameExecutor)(nil)
	_ ParticleEmitter      = (*GameExecutor)(nil)
)
