package driver

import "time"

type DriverOpt func(*Driver)

// WithTickLength sets the interval between ticks. Non-positive values keep the
// default.
func WithTickLength(tickLength time.Duration) DriverOpt {
	return func(d *Driver) {
		if tickLength > 0 {
			d.tickLength = tickLength
		}
	}
}

// WithReady delays the first tick until ready is closed.
func WithReady(ready <-chan struct{}) DriverOpt {
	return func(d *Driver) {
		d.ready = ready
	}
}
