package player

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pixil98/go-warp/internal/game"
)

// Publisher sends raw messages to a subject.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Session is a player on the host server for the duration of one command.
type Session struct {
	id    string
	perms map[string]bool
	loc   game.Location
	pub   Publisher

	mu           sync.Mutex
	fallDistance float64
}

func NewSession(id string, perms []string, loc game.Location, fallDistance float64, pub Publisher) *Session {
	set := make(map[string]bool, len(perms))
	for _, p := range perms {
		set[p] = true
	}
	return &Session{
		id:           id,
		perms:        set,
		loc:          loc,
		pub:          pub,
		fallDistance: fallDistance,
	}
}

// Id returns the player's unique identifier.
func (s *Session) Id() string {
	return s.id
}

func (s *Session) HasPermission(perm string) bool {
	return s.perms[perm]
}

// Location returns where the player stood when the command was issued.
func (s *Session) Location() game.Location {
	return s.loc
}

func (s *Session) FallDistance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallDistance
}

func (s *Session) ResetFallDistance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallDistance = 0
}

// relocation is the event the host server acts on to move a player.
type relocation struct {
	World        string  `json:"world"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Z            float64 `json:"z"`
	Yaw          float32 `json:"yaw"`
	Pitch        float32 `json:"pitch"`
	FallDistance float64 `json:"fall_distance"`
}

// Teleport asks the host server to move the player to dest.
func (s *Session) Teleport(ctx context.Context, dest game.Location) error {
	if dest.World == nil {
		return ErrNoWorld
	}

	data, err := json.Marshal(relocation{
		World:        dest.World.Name(),
		X:            dest.X,
		Y:            dest.Y,
		Z:            dest.Z,
		Yaw:          dest.Yaw,
		Pitch:        dest.Pitch,
		FallDistance: s.FallDistance(),
	})
	if err != nil {
		return fmt.Errorf("marshalling relocation: %w", err)
	}

	if err := s.pub.Publish(RelocateSubject(s.id), data); err != nil {
		return fmt.Errorf("publishing relocation: %w", err)
	}

	slog.DebugContext(ctx, "relocation dispatched", "actor", s.id, "world", dest.World.Name())
	return nil
}

// RelocateSubject is the subject relocation events for a player are sent on.
func RelocateSubject(charId string) string {
	return fmt.Sprintf("player-%s.relocate", charId)
}
