package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// DefaultParticleInterval is how often warmup particles are repeated.
const DefaultParticleInterval = 500 * time.Millisecond

// ParticleEmitter spawns a particle effect at an online player.
type ParticleEmitter interface {
	// EmitParticles returns false if the player is no longer online.
	EmitParticles(id domain.PlayerID) bool
}

// WarmupParticles repeats a particle effect at players while their warmup runs.
type WarmupParticles struct {
	emitter  ParticleEmitter
	warmups  domain.WarmupRegistry
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWarmupParticles creates a new WarmupParticles.
func NewWarmupParticles(
	emitter ParticleEmitter,
	warmups domain.WarmupRegistry,
	interval time.Duration,
) *WarmupParticles {
	if interval <= 0 {
		interval = DefaultParticleInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &WarmupParticles{
		emitter:  emitter,
		warmups:  warmups,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Show repeats the effect in the background until the warmup ends or d elapses.
func (w *WarmupParticles) Show(id domain.PlayerID, d time.Duration) {
	if w.ctx.Err() != nil {
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(w.ctx, id, d)
	}()
}

// Close stops all effects and waits for them to return.
func (w *WarmupParticles) Close() {
	w.cancel()
	w.wg.Wait()
}

func (w *WarmupParticles) run(ctx context.Context, id domain.PlayerID, d time.Duration) {
	deadline := time.NewTimer(d)
	defer deadline.Stop()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if !w.warmups.IsWarmingUp(id) || !w.emitter.EmitParticles(id) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			return
		case <-ticker.C:
		}
	}
}

// Ensure WarmupParticles implements ports.WarmupEffects.
var _ ports.WarmupEffects = (*WarmupParticles)(nil)
