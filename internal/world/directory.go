package world

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pixil98/go-warp/internal/game"
	"github.com/pixil98/go-warp/internal/storage"
)

// Loader asks the host server to load worlds.
type Loader interface {
	Load(ctx context.Context, name string) error
	LoadFor(ctx context.Context, name string, actorId string) error
	LoadedWorlds(ctx context.Context) ([]string, error)
}

// Executor runs tasks in the background.
type Executor interface {
	Go(task func(ctx context.Context)) error
}

// Directory knows which worlds are defined and which are live.
type Directory struct {
	defs   storage.Storer[*Definition]
	loader Loader
	exec   Executor

	mu      sync.RWMutex
	live    map[string]*Handle
	pending map[string]bool
}

func NewDirectory(defs storage.Storer[*Definition], loader Loader, exec Executor) *Directory {
	return &Directory{
		defs:    defs,
		loader:  loader,
		exec:    exec,
		live:    map[string]*Handle{},
		pending: map[string]bool{},
	}
}

// Managed satisfies game.WorldDirectory.
func (d *Directory) Managed(name string) (game.ManagedWorld, bool) {
	def := d.defs.Get(name)
	if def == nil {
		return nil, false
	}
	return &Managed{dir: d, name: name, def: def}, true
}

// Live satisfies game.WorldDirectory.
func (d *Directory) Live(name string) (game.World, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	h, ok := d.live[name]
	if !ok {
		return nil, false
	}
	return h, true
}

// MarkLoaded records that the host server has name loaded.
func (d *Directory) MarkLoaded(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.live[name]; ok {
		return
	}
	d.live[name] = newHandle(name)
	slog.Info("world live", "world", name)
}

// MarkUnloaded records that the host server no longer has name loaded.
func (d *Directory) MarkUnloaded(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.live[name]; !ok {
		return
	}
	delete(d.live, name)
	slog.Info("world unloaded", "world", name)
}

// Tick reconciles the live set with the worlds the host server reports. When
// the host cannot be asked, the live set is left as it was.
func (d *Directory) Tick(ctx context.Context) error {
	names, err := d.loader.LoadedWorlds(ctx)
	if err != nil {
		return fmt.Errorf("listing loaded worlds: %w", err)
	}

	reported := make(map[string]bool, len(names))
	for _, name := range names {
		reported[name] = true
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for name := range d.live {
		if !reported[name] {
			delete(d.live, name)
		}
	}
	for name := range reported {
		if _, ok := d.live[name]; !ok {
			d.live[name] = newHandle(name)
		}
	}

	return nil
}

func (d *Directory) load(ctx context.Context, name string) error {
	if err := d.loader.Load(ctx, name); err != nil {
		return fmt.Errorf("loading world %q: %w", name, err)
	}
	d.MarkLoaded(name)
	return nil
}

func (d *Directory) loadFor(ctx context.Context, name string, actorId string) {
	d.mu.Lock()
	if d.pending[name] {
		d.mu.Unlock()
		return
	}
	d.pending[name] = true
	d.mu.Unlock()

	done := func() {
		d.mu.Lock()
		delete(d.pending, name)
		d.mu.Unlock()
	}

	err := d.exec.Go(func(ctx context.Context) {
		defer done()

		if err := d.loader.LoadFor(ctx, name, actorId); err != nil {
			slog.WarnContext(ctx, "loading world for actor", "world", name, "actor", actorId, "error", err)
			return
		}
		d.MarkLoaded(name)
	})
	if err != nil {
		done()
		slog.WarnContext(ctx, "dispatching world load", "world", name, "actor", actorId, "error", err)
	}
}

// Managed is a defined world whose loading the directory drives.
type Managed struct {
	dir  *Directory
	name string
	def  *Definition
}

func (m *Managed) Name() string {
	return m.name
}

func (m *Managed) Definition() *Definition {
	return m.def
}

func (m *Managed) Loaded() bool {
	_, ok := m.dir.Live(m.name)
	return ok
}

// LoadFor dispatches a load scoped to a single actor and returns immediately.
// A second request while one is in flight is dropped.
func (m *Managed) LoadFor(ctx context.Context, actorId string) {
	m.dir.loadFor(ctx, m.name, actorId)
}

// Load asks the host server to load the world and waits for the answer.
func (m *Managed) Load(ctx context.Context) error {
	return m.dir.load(ctx, m.name)
}
