package warp

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/pixil98/go-warp/internal/game"
)

// namedWorld is a live world handle for testing
type namedWorld string

func (w namedWorld) Name() string { return string(w) }

// syncExec runs tasks inline
type syncExec struct {
	err   error
	count int
}

func (e *syncExec) Go(task func(context.Context)) error {
	if e.err != nil {
		return e.err
	}
	e.count++
	task(context.Background())
	return nil
}

// queueExec holds tasks until run is called
type queueExec struct {
	tasks []func(context.Context)
}

func (e *queueExec) Go(task func(context.Context)) error {
	e.tasks = append(e.tasks, task)
	return nil
}

// mockStore implements Store for testing
type mockStore struct {
	mu      sync.Mutex
	loaded  map[string]Warp
	loadErr error
	saveErr error
	saves   []map[string]Warp
}

func (s *mockStore) Load() (map[string]Warp, error) {
	return maps.Clone(s.loaded), s.loadErr
}

func (s *mockStore) Save(warps map[string]Warp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves = append(s.saves, warps)
	return nil
}

func (s *mockStore) last() map[string]Warp {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saves) == 0 {
		return nil
	}
	return s.saves[len(s.saves)-1]
}

// mockManaged implements game.ManagedWorld for testing
type mockManaged struct {
	dir  *mockDirectory
	name string

	// goesLive controls whether a full load makes the world live
	goesLive bool
	loadErr  error

	scopedLoads []string
	fullLoads   int
}

func (m *mockManaged) Loaded() bool {
	_, ok := m.dir.live[m.name]
	return ok
}

func (m *mockManaged) LoadFor(ctx context.Context, actorId string) {
	m.scopedLoads = append(m.scopedLoads, actorId)
}

func (m *mockManaged) Load(ctx context.Context) error {
	m.fullLoads++
	if m.loadErr != nil {
		return m.loadErr
	}
	if m.goesLive {
		m.dir.live[m.name] = namedWorld(m.name)
	}
	return nil
}

// mockDirectory implements game.WorldDirectory for testing
type mockDirectory struct {
	managed map[string]*mockManaged
	live    map[string]game.World
}

func newMockDirectory() *mockDirectory {
	return &mockDirectory{
		managed: map[string]*mockManaged{},
		live:    map[string]game.World{},
	}
}

func (d *mockDirectory) addManaged(name string, goesLive bool) *mockManaged {
	m := &mockManaged{dir: d, name: name, goesLive: goesLive}
	d.managed[name] = m
	return m
}

func (d *mockDirectory) addLive(name string) {
	d.live[name] = namedWorld(name)
}

func (d *mockDirectory) Managed(name string) (game.ManagedWorld, bool) {
	m, ok := d.managed[name]
	if !ok {
		return nil, false
	}
	return m, true
}

func (d *mockDirectory) Live(name string) (game.World, bool) {
	w, ok := d.live[name]
	return w, ok
}

func (d *mockDirectory) loadAttempts() int {
	n := 0
	for _, m := range d.managed {
		n += len(m.scopedLoads) + m.fullLoads
	}
	return n
}

// mockActor implements Actor for testing
type mockActor struct {
	id           string
	fallDistance float64
	teleportErr  error
	destinations []game.Location
}

func (a *mockActor) Id() string { return a.id }

func (a *mockActor) ResetFallDistance() { a.fallDistance = 0 }

func (a *mockActor) Teleport(ctx context.Context, dest game.Location) error {
	a.destinations = append(a.destinations, dest)
	return a.teleportErr
}

var errMock = errors.New("mock failure")
