package infrastructure

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

type countingEmitter struct {
	mu      sync.Mutex
	emitted int
	offline bool
	// onEmit runs after each emission, outside the lock.
	onEmit func(n int)
}

func (e *countingEmitter) EmitParticles(domain.PlayerID) bool {
	e.mu.Lock()
	if e.offline {
		e.mu.Unlock()
		return false
	}
	e.emitted++
	n := e.emitted
	e.mu.Unlock()

	if e.onEmit != nil {
		e.onEmit(n)
	}
	return true
}

func (e *countingEmitter) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.emitted
}

func TestWarmupParticles_Run(t *testing.T) {
	id := testPlayerID(1)

	tests := []struct {
		name        string
		warming     bool
		offline     bool
		interval    time.Duration
		duration    time.Duration
		cancelled   bool
		wantEmitted int
	}{
		{name: "no warmup", warming: false, interval: time.Hour, duration: time.Hour, wantEmitted: 0},
		{name: "player offline", warming: true, offline: true, interval: time.Hour, duration: time.Hour, wantEmitted: 0},
		{name: "stops at deadline", warming: true, interval: time.Hour, duration: 10 * time.Millisecond, wantEmitted: 1},
		{name: "stops when cancelled", warming: true, interval: time.Hour, duration: time.Hour, cancelled: true, wantEmitted: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warmups := NewMemoryWarmupRegistry()
			if tt.warming {
				warmups.Put(domain.WarmupEntry{PlayerID: id, Handle: &countingHandle{}})
			}
			emitter := &countingEmitter{offline: tt.offline}
			particles := NewWarmupParticles(emitter, warmups, tt.interval)
			defer particles.Close()

			ctx, cancel := context.WithCancel(context.Background())
			if tt.cancelled {
				cancel()
			} else {
				defer cancel()
			}

			particles.run(ctx, id, tt.duration)

			if got := emitter.count(); got != tt.wantEmitted {
				t.Errorf("expected %d emissions, got %d", tt.wantEmitted, got)
			}
		})
	}
}

func TestWarmupParticles_StopsWhenWarmupEnds(t *testing.T) {
	id := testPlayerID(1)
	warmups := NewMemoryWarmupRegistry()
	warmups.Put(domain.WarmupEntry{PlayerID: id, Handle: &countingHandle{}})

	emitter := &countingEmitter{}
	emitter.onEmit = func(n int) {
		if n == 3 {
			warmups.Cancel(id)
		}
	}
	particles := NewWarmupParticles(emitter, warmups, time.Millisecond)
	defer particles.Close()

	particles.run(context.Background(), id, time.Hour)

	if got := emitter.count(); got != 3 {
		t.Errorf("expected 3 emissions, got %d", got)
	}
}

func TestWarmupParticles_CloseStopsRunningEffects(t *testing.T) {
	id := testPlayerID(1)
	warmups := NewMemoryWarmupRegistry()
	warmups.Put(domain.WarmupEntry{PlayerID: id, Handle: &countingHandle{}})

	first := make(chan struct{})
	var once sync.Once
	emitter := &countingEmitter{onEmit: func(int) { once.Do(func() { close(first) }) }}
	particles := NewWarmupParticles(emitter, warmups, time.Hour)

	particles.Show(id, time.Hour)

	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for the first emission")
	}

	done := make(chan struct{})
	go func() {
		particles.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Close")
	}

	particles.Show(id, time.Hour)
	if got := emitter.count(); got != 1 {
		t.Errorf("expected no emissions after Close, got %d", got)
	}
}
