package warp

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/pixil98/go-warp/internal/game"
)

// Store persists the full set of warps.
type Store interface {
	Load() (map[string]Warp, error)
	Save(map[string]Warp) error
}

// Actor is something that can be sent to a warp.
type Actor interface {
	Id() string
	ResetFallDistance()
	// Teleport moves the actor to dest. It is called from a background task.
	Teleport(ctx context.Context, dest game.Location) error
}

// Registry is the single source of truth for warps at runtime. The store is a
// mirror that is flushed after every mutation.
type Registry struct {
	exec     Executor
	resolver *Resolver
	flusher  *flusher

	mu      sync.RWMutex
	warps   map[string]Warp
	version uint64
}

// NewRegistry creates a registry and loads it from store. A store that cannot
// be read leaves the registry empty.
func NewRegistry(ctx context.Context, store Store, worlds game.WorldDirectory, exec Executor) *Registry {
	r := &Registry{
		exec:     exec,
		resolver: NewResolver(worlds),
		flusher:  &flusher{store: store},
		warps:    map[string]Warp{},
	}
	r.load(ctx, store)
	return r
}

func (r *Registry) load(ctx context.Context, store Store) {
	loaded, err := store.Load()
	if err != nil {
		slog.ErrorContext(ctx, "loading warps", "error", err)
		loaded = nil
	}

	warps := make(map[string]Warp, len(loaded))
	for name, w := range loaded {
		if !w.Valid() {
			slog.DebugContext(ctx, "skipping warp without world", "warp", name)
			continue
		}
		warps[Canonical(name)] = w
	}

	r.mu.Lock()
	r.warps = warps
	r.mu.Unlock()

	slog.InfoContext(ctx, "warps loaded", "count", len(warps))
}

// Exists reports whether a warp with the given name exists.
func (r *Registry) Exists(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Get returns the warp stored under name.
func (r *Registry) Get(name string) (Warp, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.warps[Canonical(name)]
	return w, ok
}

// Set creates or replaces the warp at loc. A location without a world is
// ignored.
func (r *Registry) Set(ctx context.Context, name string, loc game.Location) {
	key := Canonical(name)
	w, ok := FromLocation(loc)
	if !ok {
		slog.DebugContext(ctx, "ignoring warp without world", "warp", key)
		return
	}

	r.mu.Lock()
	r.warps[key] = w
	s := r.snapshotLocked()
	r.mu.Unlock()

	slog.InfoContext(ctx, "warp set", "warp", key, "world", w.World)
	r.dispatchFlush(ctx, s)
}

// Remove deletes the warp with the given name if it exists.
func (r *Registry) Remove(ctx context.Context, name string) {
	key := Canonical(name)

	r.mu.Lock()
	delete(r.warps, key)
	s := r.snapshotLocked()
	r.mu.Unlock()

	slog.InfoContext(ctx, "warp removed", "warp", key)
	r.dispatchFlush(ctx, s)
}

// Names returns all warp names in lexicographic order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.warps))
}

// Teleport sends actor to the named warp. It reports false when the warp does
// not exist or its world cannot be made live. On success the relocation has
// been dispatched but not necessarily completed.
func (r *Registry) Teleport(ctx context.Context, actor Actor, name string) bool {
	key := Canonical(name)
	w, ok := r.Get(key)
	if !ok {
		return false
	}

	res := r.resolver.Resolve(ctx, w.World, actor.Id())
	if res.State != Loaded {
		slog.InfoContext(ctx, "warp world unavailable",
			"warp", key, "world", w.World, "actor", actor.Id(), "state", res.State.String())
		return false
	}

	dest := w.Destination(res.World)
	actor.ResetFallDistance()

	err := r.exec.Go(func(ctx context.Context) {
		if err := actor.Teleport(ctx, dest); err != nil {
			slog.WarnContext(ctx, "teleporting actor", "warp", key, "actor", actor.Id(), "error", err)
		}
	})
	if err != nil {
		slog.ErrorContext(ctx, "dispatching teleport", "warp", key, "actor", actor.Id(), "error", err)
		return false
	}

	return true
}

// snapshotLocked copies the map. Callers must hold the write lock.
func (r *Registry) snapshotLocked() snapshot {
	r.version++
	return snapshot{
		version: r.version,
		warps:   maps.Clone(r.warps),
	}
}

func (r *Registry) dispatchFlush(ctx context.Context, s snapshot) {
	err := r.exec.Go(func(ctx context.Context) {
		r.flusher.flush(ctx, s)
	})
	if err != nil {
		slog.ErrorContext(ctx, "dispatching warp flush", "version", s.version, "error", err)
	}
}
