package warp

import (
	"strings"

	"github.com/pixil98/go-warp/internal/game"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Warp is a named point in a world. The name is not part of the record; it is
// the key the record is stored under.
type Warp struct {
	World string

	X, Y, Z    float64
	Yaw, Pitch float32
}

// FromLocation builds a warp from loc. It reports false when loc is detached
// from any world.
func FromLocation(loc game.Location) (Warp, bool) {
	if loc.World == nil {
		return Warp{}, false
	}
	return Warp{
		World: loc.World.Name(),
		X:     loc.X,
		Y:     loc.Y,
		Z:     loc.Z,
		Yaw:   loc.Yaw,
		Pitch: loc.Pitch,
	}, true
}

// Valid reports whether the warp references a world.
func (w Warp) Valid() bool {
	return strings.TrimSpace(w.World) != ""
}

// Destination places the warp's coordinates in a live world.
func (w Warp) Destination(world game.World) game.Location {
	return game.Location{
		World: world,
		X:     w.X,
		Y:     w.Y,
		Z:     w.Z,
		Yaw:   w.Yaw,
		Pitch: w.Pitch,
	}
}

// Canonical returns the case-folded form of a warp name used as its key.
func Canonical(name string) string {
	// Casers hold state and are not safe to share between goroutines.
	return cases.Lower(language.Und).String(name)
}
