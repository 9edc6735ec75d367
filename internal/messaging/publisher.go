package messaging

import (
	"fmt"

	"github.com/pixil98/go-warp/internal/display"
)

// Publisher sends raw messages to a subject.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NatsPublisher publishes messages to individual player channels.
type NatsPublisher struct {
	pub   Publisher
	width int
}

// NewNatsPublisher wraps a publisher for per-player message delivery. Messages
// are wrapped to width columns; zero uses the display default.
func NewNatsPublisher(pub Publisher, width int) *NatsPublisher {
	return &NatsPublisher{pub: pub, width: width}
}

// PublishToPlayer sends a word-wrapped message to a player's channel.
func (p *NatsPublisher) PublishToPlayer(charId string, data []byte) error {
	return p.pub.Publish(PlayerSubject(charId), []byte(display.Wrap(string(data), p.width)))
}

// PlayerSubject is the subject messages for a player are sent on.
func PlayerSubject(charId string) string {
	return fmt.Sprintf("player-%s", charId)
}
