package game

// World is a handle to a world that is live on the host server.
type World interface {
	Name() string
}

// Location is a point in a specific world. A nil World means the location is
// detached from any world and cannot be used as a destination.
type Location struct {
	World World

	X, Y, Z    float64
	Yaw, Pitch float32
}

// WorldName returns the name of the location's world, or "" when detached.
func (l Location) WorldName() string {
	if l.World == nil {
		return ""
	}
	return l.World.Name()
}
