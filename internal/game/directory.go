package game

import "context"

// WorldDirectory tracks which worlds are known to the server and which of
// them are live.
type WorldDirectory interface {
	// Managed returns the managed wrapper for name, if the directory knows it.
	Managed(name string) (ManagedWorld, bool)
	// Live resolves a live world handle by name. A world may be live without
	// being managed, e.g. when the host server loaded it on its own.
	Live(name string) (World, bool)
}

// ManagedWorld is a world whose lifecycle the directory can drive.
type ManagedWorld interface {
	Loaded() bool
	// LoadFor prepares the world for a single requester. It must not block.
	LoadFor(ctx context.Context, actorId string)
	// Load fully loads the world and returns once the request completes.
	Load(ctx context.Context) error
}
