package infrastructure

import (
	"errors"
	"sync"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

// ErrSchedulerClosed is returned when scheduling on a closed TimerScheduler.
var ErrSchedulerClosed = errors.New("scheduler closed")

// SystemClock is a Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimerScheduler runs delayed callbacks on their own goroutines using time.AfterFunc.
// Callbacks that need game state must hop onto the world themselves.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[*scheduledTimer]struct{}
	closed bool
}

// NewTimerScheduler creates a new TimerScheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[*scheduledTimer]struct{}),
	}
}

// Schedule runs fn after d unless the returned handle is cancelled first.
func (s *TimerScheduler) Schedule(d time.Duration, fn func()) (domain.CancelHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSchedulerClosed
	}

	t := &scheduledTimer{scheduler: s}
	s.timers[t] = struct{}{}
	t.timer = time.AfterFunc(d, func() {
		if s.forget(t) {
			fn()
		}
	})
	return t, nil
}

// Pending returns the number of timers that have neither fired nor been cancelled.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}

// Close stops all pending timers. Scheduling afterwards fails.
func (s *TimerScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for t := range s.timers {
		t.timer.Stop()
		delete(s.timers, t)
	}
}

// forget drops the timer and reports whether it was still pending.
func (s *TimerScheduler) forget(t *scheduledTimer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[t]; !ok {
		return false
	}
	delete(s.timers, t)
	return true
}

type scheduledTimer struct {
	scheduler *TimerScheduler
	timer     *time.Timer
}

// Cancel stops the timer. Cancelling a fired timer does nothing.
func (t *scheduledTimer) Cancel() {
	if t.scheduler.forget(t) {
		t.timer.Stop()
	}
}

var (
	_ ports.Clock     = SystemClock{}
	_ ports.Scheduler = (*TimerScheduler)(nil)
)
