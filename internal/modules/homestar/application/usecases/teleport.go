package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// DefaultInteractionGrace is how long after arming interaction events are ignored.
// The host may report the click that started the warmup more than once.
const DefaultInteractionGrace = 100 * time.Millisecond

// TeleportSettings is the configuration snapshot the teleport use cases work with.
type TeleportSettings struct {
	Warmup              time.Duration
	Cooldown            time.Duration
	MinimumDistance     float64
	CancelOnDamage      bool
	CancelOnMovement    bool
	CancelOnInteraction bool
	InteractionGrace    time.Duration
	BedspawnFallback    bool
	Removal             domain.RemovalPolicy
}

// TeleportDependencies groups the collaborators of TeleportService.
type TeleportDependencies struct {
	Warmups      domain.WarmupRegistry
	Cooldowns    domain.CooldownTracker
	Messages     domain.MessageCooldownTracker // Optional: cleared when a player quits
	Clock        ports.Clock
	Scheduler    ports.Scheduler
	Executor     ports.PlayerExecutor
	Destinations ports.DestinationResolver
	Worlds       ports.WorldPolicy // Optional: all worlds enabled if nil
	Notifier     ports.Notifier
	Publisher    ports.EventPublisher
	Effects      ports.WarmupEffects // Optional: no warmup effects if nil
}

// RequestTeleportOutput contains the result of the RequestTeleport use case.
type RequestTeleportOutput struct {
	Destination domain.Destination
	Warmup      time.Duration
	Completed   bool // true if the teleport ran immediately because there is no warmup
}

// TeleportService coordinates HomeStar teleports: eligibility checks, warmup,
// cancellation and cooldown.
type TeleportService struct {
	deps     TeleportDependencies
	settings TeleportSettings
}

// NewTeleportService creates a new TeleportService.
func NewTeleportService(deps TeleportDependencies, settings TeleportSettings) *TeleportService {
	if settings.InteractionGrace < 0 {
		settings.InteractionGrace = 0
	}
	return &TeleportService{
		deps:     deps,
		settings: settings,
	}
}

// Settings returns the configuration snapshot of the service.
func (s *TeleportService) Settings() TeleportSettings {
	return s.settings
}

// RequestTeleport starts a teleport for the player holding a HomeStar.
// Must be called on the player's timeline.
func (s *TeleportService) RequestTeleport(
	ctx context.Context,
	player ports.Player,
) (*RequestTeleportOutput, error) {
	id := player.ID()

	if remaining := s.deps.Cooldowns.RemainingSeconds(id); remaining > 0 {
		s.deps.Notifier.Notify(player, domain.MessageTeleportCooldown, domain.Substitutions{
			domain.SubstRemaining: time.Duration(remaining) * time.Second,
		})
		return nil, ErrOnCooldown
	}

	if s.deps.Warmups.IsWarmingUp(id) {
		return nil, ErrAlreadyWarmingUp
	}

	origin := player.Location()
	if s.deps.Worlds != nil && !s.deps.Worlds.Enabled(origin.World) {
		s.deps.Notifier.Notify(player, domain.MessageTeleportFailWorldDisabled, domain.Substitutions{
			domain.SubstWorld: origin.World,
		})
		return nil, ErrWorldDisabled
	}

	dest, err := s.resolveDestination(ctx, id, origin)
	if err != nil {
		slog.Debug("no teleport destination", "player", id, "error", err)
		s.deps.Notifier.Notify(player, domain.MessageTeleportFailNoBedspawn, nil)
		return nil, err
	}

	if s.tooClose(origin, dest.Location) {
		s.deps.Notifier.Notify(player, domain.MessageTeleportFailMinDistance, domain.Substitutions{
			domain.SubstDestination: dest.Kind,
		})
		return nil, ErrBelowMinimumDistance
	}

	output := &RequestTeleportOutput{
		Destination: dest,
		Warmup:      s.settings.Warmup,
	}

	if s.settings.Warmup <= 0 {
		s.consumeOnUse(player)
		s.complete(player, origin, dest)
		output.Completed = true
		return output, nil
	}

	task := &pendingTeleport{}
	s.deps.Warmups.Put(domain.WarmupEntry{
		PlayerID: id,
		Handle:   task,
		ArmedAt:  s.deps.Clock.Now(),
	})

	handle, err := s.deps.Scheduler.Schedule(s.settings.Warmup, func() {
		s.fire(id, task, origin, dest)
	})
	if err != nil {
		s.deps.Warmups.RemoveIf(id, task)
		return nil, fmt.Errorf("%w: %w", ErrSchedulerUnavailable, err)
	}
	task.bind(handle)

	// The item is only taken once the warmup is armed.
	s.consumeOnUse(player)

	s.deps.Notifier.Notify(player, domain.MessageTeleportWarmup, domain.Substitutions{
		domain.SubstDestination: dest.Kind,
		domain.SubstDuration:    s.settings.Warmup,
	})
	if s.deps.Effects != nil {
		s.deps.Effects.Show(id, s.settings.Warmup)
	}

	slog.Debug(
		"teleport warmup started",
		"player", id,
		"destination", dest.Kind,
		"warmup", s.settings.Warmup,
	)

	return output, nil
}

// Cancel stops the player's warmup for the given reason.
// Safe to call unconditionally: returns false if nothing was cancelled.
func (s *TeleportService) Cancel(player ports.Player, reason domain.CancelReason) bool {
	id := player.ID()

	if reason == domain.CancelQuit && s.deps.Messages != nil {
		defer s.deps.Messages.Clear(id)
	}

	if !s.triggerEnabled(reason) {
		return false
	}

	var cancelled bool
	if reason == domain.CancelInteraction {
		// The click that armed the warmup may be reported again within the grace window.
		cutoff := s.deps.Clock.Now().Add(-s.settings.InteractionGrace)
		cancelled = s.deps.Warmups.CancelIf(id, cutoff)
	} else {
		cancelled = s.deps.Warmups.Cancel(id)
	}
	if !cancelled {
		return false
	}

	slog.Debug("teleport cancelled", "player", id, "reason", reason)

	if kind, ok := reason.Message(); ok {
		s.deps.Notifier.Notify(player, kind, nil)
	}

	s.deps.Publisher.PublishTeleportCancelled(domain.TeleportCancelledEvent{
		PlayerID: id,
		Reason:   reason,
		At:       s.deps.Clock.Now(),
	})

	return true
}

// IsWarmingUp reports whether the player has a teleport in progress.
func (s *TeleportService) IsWarmingUp(id domain.PlayerID) bool {
	return s.deps.Warmups.IsWarmingUp(id)
}

// RemainingCooldownSeconds returns the whole seconds until the player may teleport again.
func (s *TeleportService) RemainingCooldownSeconds(id domain.PlayerID) int64 {
	return s.deps.Cooldowns.RemainingSeconds(id)
}

func (s *TeleportService) resolveDestination(
	ctx context.Context,
	id domain.PlayerID,
	origin domain.Location,
) (domain.Destination, error) {
	home, err := s.deps.Destinations.Home(ctx, id)
	if err == nil {
		return domain.Destination{Kind: domain.DestinationHome, Location: home}, nil
	}
	if !errors.Is(err, domain.ErrHomeNotFound) {
		return domain.Destination{}, fmt.Errorf("%w: %w", ErrNoDestination, err)
	}
	if !s.settings.BedspawnFallback {
		return domain.Destination{}, ErrNoDestination
	}

	spawn, err := s.deps.Destinations.Spawn(ctx, origin)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("%w: %w", ErrNoDestination, err)
	}
	return domain.Destination{Kind: domain.DestinationSpawn, Location: spawn}, nil
}

// tooClose reports whether the minimum distance rejects the teleport.
// Destinations in another world always pass.
func (s *TeleportService) tooClose(origin, dest domain.Location) bool {
	if s.settings.MinimumDistance <= 0 || !origin.SameWorld(dest) {
		return false
	}
	return origin.Distance(dest) < s.settings.MinimumDistance
}

func (s *TeleportService) triggerEnabled(reason domain.CancelReason) bool {
	switch reason {
	case domain.CancelDamage:
		return s.settings.CancelOnDamage
	case domain.CancelMovement:
		return s.settings.CancelOnMovement
	case domain.CancelInteraction:
		return s.settings.CancelOnInteraction
	default:
		return reason.Unconditional()
	}
}

func (s *TeleportService) consumeOnUse(player ports.Player) {
	if s.settings.Removal != domain.RemoveOnUse {
		return
	}
	if !player.ConsumeHomeStar() {
		slog.Debug("no homestar to consume on use", "player", player.ID())
	}
}

// fire runs when the warmup elapses, outside the player's timeline.
func (s *TeleportService) fire(
	id domain.PlayerID,
	task *pendingTeleport,
	origin domain.Location,
	dest domain.Destination,
) {
	if !s.deps.Warmups.RemoveIf(id, task) {
		return
	}

	online := s.deps.Executor.Exec(id, func(player ports.Player) {
		s.complete(player, origin, dest)
	})
	if !online {
		slog.Debug("player left before teleport", "player", id)
	}
}

// complete performs the teleport on the player's timeline.
func (s *TeleportService) complete(
	player ports.Player,
	origin domain.Location,
	dest domain.Destination,
) {
	id := player.ID()
	name := player.Name()

	consumed := false
	if s.settings.Removal == domain.RemoveOnSuccess {
		if !player.ConsumeHomeStar() {
			s.deps.Notifier.Notify(player, domain.MessageTeleportCancelledNoItem, nil)
			return
		}
		consumed = true
	}

	// The player handle is only valid on its current timeline, which a
	// cross-world move leaves, so the success message is sent on arrival.
	err := player.Teleport(dest.Location, func(arrived ports.Player) {
		s.deps.Notifier.Notify(arrived, domain.MessageTeleportSuccess, domain.Substitutions{
			domain.SubstDestination: dest.Kind,
		})
	})
	if err != nil {
		slog.Error("failed to teleport player", "player", id, "error", err)
		if consumed && !player.RestoreHomeStar() {
			slog.Warn("failed to restore homestar", "player", id)
		}
		return
	}

	if s.settings.Cooldown > 0 {
		s.deps.Cooldowns.Start(id, s.settings.Cooldown)
	}

	s.deps.Publisher.PublishTeleportCompleted(domain.TeleportCompletedEvent{
		PlayerID:    id,
		PlayerName:  name,
		Origin:      origin,
		Destination: dest,
		At:          s.deps.Clock.Now(),
	})
}

// pendingTeleport is the cancel handle stored in the warmup registry.
// It is registered before the timer exists, so the timer handle is bound later.
type pendingTeleport struct {
	mu        sync.Mutex
	timer     domain.CancelHandle
	cancelled bool
}

// Cancel stops the bound timer. Cancelling before binding stops it on bind.
func (p *pendingTeleport) Cancel() {
	p.mu.Lock()
	if p.cancelled {
		p.mu.Unlock()
		return
	}
	p.cancelled = true
	timer := p.timer
	p.mu.Unlock()

	if timer != nil {
		timer.Cancel()
	}
}

func (p *pendingTeleport) bind(timer domain.CancelHandle) {
	p.mu.Lock()
	if p.cancelled {
		p.mu.Unlock()
		timer.Cancel()
		return
	}
	p.timer = timer
	p.mu.Unlock()
}
