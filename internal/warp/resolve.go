package warp

import (
	"context"
	"log/slog"

	"github.com/pixil98/go-warp/internal/game"
)

// LoadState is a step in resolving a warp's world into a live handle.
type LoadState int

const (
	NotLoaded LoadState = iota
	LoadRequested
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "not_loaded"
	case LoadRequested:
		return "load_requested"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving a world name.
type Resolution struct {
	World game.World
	State LoadState

	// ScopedLoad is set when a load for the requesting actor was dispatched.
	ScopedLoad bool
	// FullLoad is set when an unscoped load was requested.
	FullLoad bool
}

// Resolver turns a world name into a live world handle, loading the world
// through the directory when it can.
type Resolver struct {
	worlds game.WorldDirectory
}

func NewResolver(worlds game.WorldDirectory) *Resolver {
	return &Resolver{worlds: worlds}
}

// Resolve walks NotLoaded -> LoadRequested -> Loaded|Failed for worldName on
// behalf of actorId. It never retries a failed load.
func (r *Resolver) Resolve(ctx context.Context, worldName string, actorId string) Resolution {
	res := Resolution{State: NotLoaded}

	managed, known := r.worlds.Managed(worldName)
	if known && !managed.Loaded() {
		managed.LoadFor(ctx, actorId)
		res.ScopedLoad = true
	}

	for res.State != Loaded && res.State != Failed {
		res.State = r.step(ctx, worldName, managed, known, &res)
	}

	return res
}

func (r *Resolver) step(ctx context.Context, worldName string, managed game.ManagedWorld, known bool, res *Resolution) LoadState {
	if w, ok := r.worlds.Live(worldName); ok {
		res.World = w
		return Loaded
	}

	switch res.State {
	case NotLoaded:
		if !known {
			return Failed
		}
		res.FullLoad = true
		if err := managed.Load(ctx); err != nil {
			slog.WarnContext(ctx, "loading world", "world", worldName, "error", err)
		}
		return LoadRequested
	default:
		return Failed
	}
}
