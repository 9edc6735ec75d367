package world

import "time"

// Handle is a live world.
type Handle struct {
	name  string
	since time.Time
}

func newHandle(name string) *Handle {
	return &Handle{name: name, since: time.Now()}
}

func (h *Handle) Name() string {
	return h.name
}

// Since returns when the world became live.
func (h *Handle) Since() time.Time {
	return h.since
}
