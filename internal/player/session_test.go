package player

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-warp/internal/game"
)

type stubWorld string

func (w stubWorld) Name() string { return string(w) }

// mockPublisher records published messages
type mockPublisher struct {
	err      error
	subjects []string
	payloads [][]byte
}

func (p *mockPublisher) Publish(subject string, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func TestSession_HasPermission(t *testing.T) {
	s := NewSession("alex", []string{"warp.use", "warp.list"}, game.Location{}, 0, &mockPublisher{})

	testutil.AssertEqual(t, "use", s.HasPermission("warp.use"), true)
	testutil.AssertEqual(t, "list", s.HasPermission("warp.list"), true)
	testutil.AssertEqual(t, "set", s.HasPermission("warp.set"), false)
}

func TestSession_ResetFallDistance(t *testing.T) {
	s := NewSession("alex", nil, game.Location{}, 12.5, &mockPublisher{})
	testutil.AssertEqual(t, "before", s.FallDistance(), 12.5)

	s.ResetFallDistance()
	testutil.AssertEqual(t, "after", s.FallDistance(), 0.0)
}

func TestSession_Teleport(t *testing.T) {
	tests := map[string]struct {
		dest       game.Location
		pubErr     error
		expErr     string
		expSubject string
		expEvent   relocation
	}{
		"publishes relocation": {
			dest:       game.Location{World: stubWorld("world_nether"), X: 1.5, Y: 70, Z: -2, Yaw: 90, Pitch: 15},
			expSubject: "player-alex.relocate",
			expEvent:   relocation{World: "world_nether", X: 1.5, Y: 70, Z: -2, Yaw: 90, Pitch: 15, FallDistance: 3},
		},
		"no world": {
			dest:   game.Location{X: 1},
			expErr: ErrNoWorld.Error(),
		},
		"publish failure": {
			dest:   game.Location{World: stubWorld("world")},
			pubErr: errors.New("connection closed"),
			expErr: "publishing relocation: connection closed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pub := &mockPublisher{err: tt.pubErr}
			s := NewSession("alex", nil, game.Location{}, 3, pub)

			err := s.Teleport(context.Background(), tt.dest)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "published", len(pub.subjects), 1)
			testutil.AssertEqual(t, "subject", pub.subjects[0], tt.expSubject)

			var got relocation
			if err := json.Unmarshal(pub.payloads[0], &got); err != nil {
				t.Fatalf("unmarshalling relocation: %v", err)
			}
			testutil.AssertEqual(t, "event", got, tt.expEvent)
		})
	}
}
