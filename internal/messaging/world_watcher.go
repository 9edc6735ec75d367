package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Subscriber provides the ability to subscribe to message subjects
type Subscriber interface {
	Ready() <-chan struct{}
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}

// WorldTracker records world announcements from the host server.
type WorldTracker interface {
	MarkLoaded(name string)
	MarkUnloaded(name string)
}

type worldEvent struct {
	World string `json:"world"`
}

// WorldWatcher keeps a WorldTracker in step with load and unload
// announcements.
type WorldWatcher struct {
	sub     Subscriber
	tracker WorldTracker
}

func NewWorldWatcher(sub Subscriber, tracker WorldTracker) *WorldWatcher {
	return &WorldWatcher{sub: sub, tracker: tracker}
}

func (w *WorldWatcher) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-w.sub.Ready():
	}

	unsubLoaded, err := w.sub.Subscribe(SubjectWorldLoaded, w.handler(ctx, w.tracker.MarkLoaded))
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", SubjectWorldLoaded, err)
	}
	defer unsubLoaded()

	unsubUnloaded, err := w.sub.Subscribe(SubjectWorldUnloaded, w.handler(ctx, w.tracker.MarkUnloaded))
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", SubjectWorldUnloaded, err)
	}
	defer unsubUnloaded()

	<-ctx.Done()
	return nil
}

func (w *WorldWatcher) handler(ctx context.Context, apply func(string)) func([]byte) {
	return func(data []byte) {
		var ev worldEvent
		if err := json.Unmarshal(data, &ev); err != nil || ev.World == "" {
			slog.WarnContext(ctx, "ignoring malformed world event", "error", err)
			return
		}
		apply(ev.World)
	}
}
