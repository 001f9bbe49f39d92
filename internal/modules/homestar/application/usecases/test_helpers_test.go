package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/sglre6355/homestar/internal/modules/homestar/application/ports"
	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testPlayerID(n byte) domain.PlayerID {
	var id uuid.UUID
	id[15] = n
	return domain.PlayerID(id)
}

func at(world string, x, y, z float64) domain.Location {
	return domain.Location{World: world, Position: mgl64.Vec3{x, y, z}}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: testEpoch}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type manualTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (t *manualTask) Cancel() {
	t.cancelled = true
}

// manualScheduler records scheduled callbacks; tests fire them explicitly.
type manualScheduler struct {
	tasks []*manualTask
	err   error
}

func (s *manualScheduler) Schedule(d time.Duration, fn func()) (domain.CancelHandle, error) {
	if s.err != nil {
		return nil, s.err
	}
	task := &manualTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// fireDue runs every task that has not been cancelled or fired yet.
func (s *manualScheduler) fireDue() {
	for _, task := range s.tasks {
		if task.cancelled || task.fired {
			continue
		}
		task.fired = true
		task.fn()
	}
}

func (s *manualScheduler) last() *manualTask {
	if len(s.tasks) == 0 {
		return nil
	}
	return s.tasks[len(s.tasks)-1]
}

type mockPlayer struct {
	id            domain.PlayerID
	name          string
	loc           domain.Location
	homestars     int
	inventoryFull bool
	teleportErr   error
	teleportedTo  []domain.Location

	// deferArrival holds the arrival callback back, as a move into another
	// world does, until arrive is called.
	deferArrival bool
	arrival      func(ports.Player)
}

func newMockPlayer(n byte, loc domain.Location) *mockPlayer {
	return &mockPlayer{
		id:        testPlayerID(n),
		name:      "Steve",
		loc:       loc,
		homestars: 1,
	}
}

func (m *mockPlayer) ID() domain.PlayerID { return m.id }

func (m *mockPlayer) Name() string { return m.name }

func (m *mockPlayer) Location() domain.Location { return m.loc }

func (m *mockPlayer) SendMessage(string) {}

func (m *mockPlayer) PlaySound(domain.SoundKind) {}

func (m *mockPlayer) ConsumeHomeStar() bool {
	if m.homestars == 0 {
		return false
	}
	m.homestars--
	return true
}

func (m *mockPlayer) RestoreHomeStar() bool {
	if m.inventoryFull {
		return false
	}
	m.homestars++
	return true
}

func (m *mockPlayer) Teleport(to domain.Location, arrived func(ports.Player)) error {
	if m.teleportErr != nil {
		return m.teleportErr
	}
	m.teleportedTo = append(m.teleportedTo, to)
	m.loc = to
	if m.deferArrival {
		m.arrival = arrived
		return nil
	}
	arrived(m)
	return nil
}

// arrive runs the held back arrival callback with the player's new handle.
func (m *mockPlayer) arrive(handle ports.Player) {
	if m.arrival != nil {
		m.arrival(handle)
		m.arrival = nil
	}
}

type mockExecutor struct {
	players map[domain.PlayerID]*mockPlayer
}

func (m *mockExecutor) Exec(id domain.PlayerID, fn func(ports.Player)) bool {
	p, ok := m.players[id]
	if !ok {
		return false
	}
	fn(p)
	return true
}

type mockDestinations struct {
	homes      map[domain.PlayerID]domain.Location
	homeErr    error
	spawn      domain.Location
	spawnErr   error
	spawnCalls int
}

func (m *mockDestinations) Home(_ context.Context, id domain.PlayerID) (domain.Location, error) {
	if m.homeErr != nil {
		return domain.Location{}, m.homeErr
	}
	home, ok := m.homes[id]
	if !ok {
		return domain.Location{}, domain.ErrHomeNotFound
	}
	return home, nil
}

func (m *mockDestinations) Spawn(_ context.Context, _ domain.Location) (domain.Location, error) {
	m.spawnCalls++
	if m.spawnErr != nil {
		return domain.Location{}, m.spawnErr
	}
	return m.spawn, nil
}

type mockWorlds struct {
	disabled map[string]bool
}

func (m *mockWorlds) Enabled(world string) bool {
	return !m.disabled[world]
}

type notification struct {
	player domain.PlayerID
	to     ports.Player
	kind   domain.MessageKind
	subs   domain.Substitutions
}

type mockNotifier struct {
	sent []notification
}

func (m *mockNotifier) Notify(p ports.Player, kind domain.MessageKind, subs domain.Substitutions) {
	m.sent = append(m.sent, notification{player: p.ID(), to: p, kind: kind, subs: subs})
}

func (m *mockNotifier) kinds() []domain.MessageKind {
	kinds := make([]domain.MessageKind, len(m.sent))
	for i, n := range m.sent {
		kinds[i] = n.kind
	}
	return kinds
}

func (m *mockNotifier) has(kind domain.MessageKind) bool {
	for _, n := range m.sent {
		if n.kind == kind {
			return true
		}
	}
	return false
}

type mockEventPublisher struct {
	completed []domain.TeleportCompletedEvent
	cancelled []domain.TeleportCancelledEvent
}

func (m *mockEventPublisher) PublishTeleportCompleted(event domain.TeleportCompletedEvent) {
	m.completed = append(m.completed, event)
}

func (m *mockEventPublisher) PublishTeleportCancelled(event domain.TeleportCancelledEvent) {
	m.cancelled = append(m.cancelled, event)
}

type shownEffect struct {
	player   domain.PlayerID
	duration time.Duration
}

type mockEffects struct {
	shown []shownEffect
}

func (m *mockEffects) Show(id domain.PlayerID, d time.Duration) {
	m.shown = append(m.shown, shownEffect{player: id, duration: d})
}

type mockWarmupRegistry struct {
	entries map[domain.PlayerID]domain.WarmupEntry
}

func newMockWarmupRegistry() *mockWarmupRegistry {
	return &mockWarmupRegistry{entries: make(map[domain.PlayerID]domain.WarmupEntry)}
}

func (m *mockWarmupRegistry) Put(entry domain.WarmupEntry) {
	m.entries[entry.PlayerID] = entry
}

func (m *mockWarmupRegistry) IsWarmingUp(id domain.PlayerID) bool {
	_, ok := m.entries[id]
	return ok
}

func (m *mockWarmupRegistry) Get(id domain.PlayerID) (domain.WarmupEntry, bool) {
	entry, ok := m.entries[id]
	return entry, ok
}

func (m *mockWarmupRegistry) Remove(id domain.PlayerID) (domain.WarmupEntry, bool) {
	entry, ok := m.entries[id]
	delete(m.entries, id)
	return entry, ok
}

func (m *mockWarmupRegistry) RemoveIf(id domain.PlayerID, handle domain.CancelHandle) bool {
	entry, ok := m.entries[id]
	if !ok || entry.Handle != handle {
		return false
	}
	delete(m.entries, id)
	return true
}

func (m *mockWarmupRegistry) Cancel(id domain.PlayerID) bool {
	entry, ok := m.Remove(id)
	if !ok {
		return false
	}
	entry.Handle.Cancel()
	return true
}

func (m *mockWarmupRegistry) CancelIf(id domain.PlayerID, cutoff time.Time) bool {
	entry, ok := m.entries[id]
	if !ok || entry.ArmedAt.After(cutoff) {
		return false
	}
	delete(m.entries, id)
	entry.Handle.Cancel()
	return true
}

type mockCooldowns struct {
	clock   *fakeClock
	expires map[domain.PlayerID]time.Time
}

func (m *mockCooldowns) Start(id domain.PlayerID, d time.Duration) {
	m.expires[id] = m.clock.Now().Add(d)
}

func (m *mockCooldowns) Remaining(id domain.PlayerID) time.Duration {
	expiresAt, ok := m.expires[id]
	if !ok {
		return 0
	}
	return max(0, expiresAt.Sub(m.clock.Now()))
}

func (m *mockCooldowns) RemainingSeconds(id domain.PlayerID) int64 {
	return int64(m.Remaining(id) / time.Second)
}

func (m *mockCooldowns) Clear(id domain.PlayerID) {
	delete(m.expires, id)
}

type mockMessageCooldowns struct {
	cleared []domain.PlayerID
}

func (m *mockMessageCooldowns) ShouldShow(domain.PlayerID, domain.MessageKind, time.Duration) bool {
	return true
}

func (m *mockMessageCooldowns) Clear(id domain.PlayerID) {
	m.cleared = append(m.cleared, id)
}

type mockPlayerLookup struct {
	players map[string]ports.OnlinePlayer
}

func (m *mockPlayerLookup) PlayerByName(name string) (ports.OnlinePlayer, bool) {
	p, ok := m.players[name]
	return p, ok
}

// testEnv bundles a TeleportService with its mocked collaborators.
type testEnv struct {
	clock        *fakeClock
	scheduler    *manualScheduler
	warmups      *mockWarmupRegistry
	cooldowns    *mockCooldowns
	messages     *mockMessageCooldowns
	executor     *mockExecutor
	destinations *mockDestinations
	worlds       *mockWorlds
	notifier     *mockNotifier
	publisher    *mockEventPublisher
	effects      *mockEffects
	service      *TeleportService
}

func defaultSettings() TeleportSettings {
	return TeleportSettings{
		Warmup:              5 * time.Second,
		Cooldown:            30 * time.Second,
		CancelOnDamage:      true,
		CancelOnMovement:    true,
		CancelOnInteraction: true,
		InteractionGrace:    DefaultInteractionGrace,
		BedspawnFallback:    false,
		Removal:             domain.RemoveOnSuccess,
	}
}

func newTestEnv(settings TeleportSettings) *testEnv {
	clock := newFakeClock()
	env := &testEnv{
		clock:     clock,
		scheduler: &manualScheduler{},
		warmups:   newMockWarmupRegistry(),
		cooldowns: &mockCooldowns{clock: clock, expires: make(map[domain.PlayerID]time.Time)},
		messages:  &mockMessageCooldowns{},
		executor:  &mockExecutor{players: make(map[domain.PlayerID]*mockPlayer)},
		destinations: &mockDestinations{
			homes: make(map[domain.PlayerID]domain.Location),
			spawn: at("world", 0, 64, 0),
		},
		worlds:    &mockWorlds{disabled: make(map[string]bool)},
		notifier:  &mockNotifier{},
		publisher: &mockEventPublisher{},
		effects:   &mockEffects{},
	}
	env.service = NewTeleportService(TeleportDependencies{
		Warmups:      env.warmups,
		Cooldowns:    env.cooldowns,
		Messages:     env.messages,
		Clock:        env.clock,
		Scheduler:    env.scheduler,
		Executor:     env.executor,
		Destinations: env.destinations,
		Worlds:       env.worlds,
		Notifier:     env.notifier,
		Publisher:    env.publisher,
		Effects:      env.effects,
	}, settings)
	return env
}

// addPlayer registers an online player with a home 1000 blocks away.
func (e *testEnv) addPlayer(n byte) *mockPlayer {
	p := newMockPlayer(n, at("world", 0, 64, 0))
	e.executor.players[p.id] = p
	e.destinations.homes[p.id] = at("world", 1000, 70, 1000)
	return p
}
