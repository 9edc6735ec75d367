package warp

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// snapshot is a point-in-time copy of the registry, stamped with the mutation
// count that produced it.
type snapshot struct {
	version uint64
	warps   map[string]Warp
}

// flusher writes snapshots to the store. Snapshots may arrive out of order;
// one older than the last written snapshot is discarded.
type flusher struct {
	store Store

	mu      sync.Mutex
	written uint64
}

func (f *flusher) flush(ctx context.Context, s snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := uuid.New().String()
	if s.version <= f.written {
		slog.DebugContext(ctx, "discarding stale warp snapshot", "flush_id", id, "version", s.version, "written", f.written)
		return
	}

	if err := f.store.Save(s.warps); err != nil {
		slog.ErrorContext(ctx, "saving warps", "flush_id", id, "version", s.version, "error", err)
		return
	}
	f.written = s.version

	slog.DebugContext(ctx, "warps saved", "flush_id", id, "version", s.version, "count", len(s.warps))
}
