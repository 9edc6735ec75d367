package driver

import (
	"context"
	"log/slog"
	"time"

	"github.com/pixil98/go-errors"
)

const (
	DefaultTickLength = time.Second * 30
)

// Manager is reconciled on every tick.
type Manager interface {
	Tick(context.Context) error
}

// Driver ticks its managers on a fixed interval. A failing manager is logged
// and retried on the next tick; it never stops the driver or its siblings.
type Driver struct {
	tickLength time.Duration
	managers   []Manager
	ready      <-chan struct{}
}

func NewDriver(managers []Manager, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start waits for the ready signal, if any, ticks once, and then ticks on
// every interval until ctx is done.
func (d *Driver) Start(ctx context.Context) error {
	if d.ready != nil {
		select {
		case <-ctx.Done():
			return nil
		case <-d.ready:
		}
	}

	d.tickAndLog(ctx)

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.tickAndLog(ctx)
		}
	}
}

// Tick runs every manager once and returns the combined failures.
func (d *Driver) Tick(ctx context.Context) error {
	el := errors.NewErrorList()
	for _, m := range d.managers {
		el.Add(m.Tick(ctx))
	}
	return el.Err()
}

func (d *Driver) tickAndLog(ctx context.Context) {
	start := time.Now()
	if err := d.Tick(ctx); err != nil {
		slog.WarnContext(ctx, "driver tick failed", "error", err)
	}
	slog.DebugContext(ctx, "driver tick", "managers", len(d.managers), "took", time.Since(start))
}
