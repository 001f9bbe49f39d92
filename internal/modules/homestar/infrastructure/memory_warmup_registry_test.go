package infrastructure

import (
	"sync"
	"testing"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

func TestMemoryWarmupRegistry_PutAndGet(t *testing.T) {
	reg := NewMemoryWarmupRegistry()
	id := testPlayerID(1)

	if reg.IsWarmingUp(id) {
		t.Fatal("expected no entry for unknown player")
	}

	handle := &countingHandle{}
	armedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reg.Put(domain.WarmupEntry{PlayerID: id, Handle: handle, ArmedAt: armedAt})

	if !reg.IsWarmingUp(id) {
		t.Fatal("expected entry after put")
	}
	entry, ok := reg.Get(id)
	if !ok {
		t.Fatal("expected get to find the entry")
	}
	if entry.Handle != handle || !entry.ArmedAt.Equal(armedAt) {
		t.Errorf("expected stored entry, got %+v", entry)
	}
}

func TestMemoryWarmupRegistry_PutOverwrites(t *testing.T) {
	reg := NewMemoryWarmupRegistry()
	id := testPlayerID(1)
	first := &countingHandle{}
	second := &countingHandle{}

	reg.Put(domain.WarmupEntry{PlayerID: id, Handle: first})
	reg.Put(domain.WarmupEntry{PlayerID: id, Handle: second})

	if reg.Count() != 1 {
		t.Errorf("expected 1 entry, got %d", reg.Count())
	}
	entry, _ := reg.Get(id)
	if entry.Handle != second {
		t.Error("expected last writer to win")
	}
}

func TestMemoryWarmupRegistry_RemoveIdempotent(t *testing.T) {
	reg := NewMemoryWarmupRegistry()
	id := testPlayerID(1)
	reg.Put(domain.WarmupEntry{PlayerID: id, Handle: &countingHandle{}})

	if _, ok := reg.Remove(id); !ok {
		t.Error("expected first remove to find the entry")
	}
	if _, ok := reg.Remove(id); ok {
		t.Error("expected second remove to be a no-op")
	}
}

func TestMemoryWarmupRegistry_RemoveIf(t *testing.T) {
	reg := NewMemoryWarmupRegistry()
	id := testPlayerID(1)
	current := &countingHandle{}
	stale := &countingHandle{}
	reg.Put(domain.WarmupEntry{PlayerID: id, Handle: current})

	if reg.RemoveIf(id, stale) {
		t.Error("expected stale handle not to remove the entry")
	}
	if !reg.IsWarmingUp(id) {
		t.Fatal("expected entry to survive")
	}
	if !reg.RemoveIf(id, current) {
		t.Error("expected matching handle to remove the entry")
	}
	if reg.IsWarmingUp(id) {
		t.Error("expected entry to be removed")
	}
}

func TestMemoryWarmupRegistry_Cancel(t *testing.T) {
	reg := NewMemoryWarmupRegistry()
	id := testPlayerID(1)
	handle := &countingHandle{}
	reg.Put(domain.WarmupEntry{PlayerID: id, Handle: handle})

	if !reg.Cancel(id) {
		t.Error("expected cancel to report an entry")
	}
	if reg.Cancel(id) {
		t.Error("expected second cancel to be a no-op")
	}
	if handle.count() != 1 {
		t.Errorf("expected handle cancelled once, got %d", handle.count())
	}
	if reg.IsWarmingUp(id) {
		t.Error("expected entry to be removed")
	}
}

func TestMemoryWarmupRegistry_CancelIf(t *testing.T) {
	reg := NewMemoryWarmupRegistry()
	id := testPlayerID(1)
	handle := &countingHandle{}
	armedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reg.Put(domain.WarmupEntry{PlayerID: id, Handle: handle, ArmedAt: armedAt})

	if reg.CancelIf(id, armedAt.Add(-time.Millisecond)) {
		t.Error("expected entry armed after the cutoff to survive")
	}
	if !reg.IsWarmingUp(id) {
		t.Fatal("expected entry to survive")
	}
	if handle.count() != 0 {
		t.Errorf("expected handle untouched, got %d cancels", handle.count())
	}

	if !reg.CancelIf(id, armedAt) {
		t.Error("expected entry armed at the cutoff to be cancelled")
	}
	if reg.IsWarmingUp(id) {
		t.Error("expected entry to be removed")
	}
	if handle.count() != 1 {
		t.Errorf("expected handle cancelled once, got %d", handle.count())
	}
	if reg.CancelIf(id, armedAt) {
		t.Error("expected second cancel to be a no-op")
	}
}

func TestMemoryWarmupRegistry_ConcurrentCancelAndRemoveIf(t *testing.T) {
	for range 100 {
		reg := NewMemoryWarmupRegistry()
		id := testPlayerID(1)
		handle := &countingHandle{}
		reg.Put(domain.WarmupEntry{PlayerID: id, Handle: handle})

		var wg sync.WaitGroup
		var cancelled, fired bool
		wg.Add(2)
		go func() {
			defer wg.Done()
			cancelled = reg.Cancel(id)
		}()
		go func() {
			defer wg.Done()
			fired = reg.RemoveIf(id, handle)
		}()
		wg.Wait()

		if cancelled == fired {
			t.Fatalf("expected exactly one winner, got cancelled=%v fired=%v", cancelled, fired)
		}
	}
}

func TestMemoryWarmupRegistry_CancelIfNeverHitsRearmedWarmup(t *testing.T) {
	armedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cutoff := armedAt.Add(time.Second)

	for range 100 {
		reg := NewMemoryWarmupRegistry()
		id := testPlayerID(1)
		reg.Put(domain.WarmupEntry{PlayerID: id, Handle: &countingHandle{}, ArmedAt: armedAt})

		rearmed := &countingHandle{}
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.CancelIf(id, cutoff)
		}()
		go func() {
			defer wg.Done()
			reg.Put(domain.WarmupEntry{PlayerID: id, Handle: rearmed, ArmedAt: cutoff.Add(time.Millisecond)})
		}()
		wg.Wait()

		if rearmed.count() != 0 {
			t.Fatal("expected a warmup armed after the cutoff never to be cancelled")
		}
	}
}
