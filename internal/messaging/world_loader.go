package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-warp/internal/world"
)

const (
	SubjectWorldLoad       = "world.load"
	SubjectWorldLoadPlayer = "world.load.player"
	SubjectWorldList       = "world.list"
	SubjectWorldLoaded     = "world.loaded"
	SubjectWorldUnloaded   = "world.unloaded"

	DefaultRequestTimeout = 30 * time.Second

	replyCodeNotFound = "not_found"
)

// Requester sends a request and waits for its reply.
type Requester interface {
	Request(ctx context.Context, subject string, data []byte) ([]byte, error)
}

type worldRequest struct {
	RequestId string `json:"request_id"`
	World     string `json:"world,omitempty"`
	Actor     string `json:"actor,omitempty"`
}

type worldReply struct {
	Ok     bool     `json:"ok"`
	Code   string   `json:"code,omitempty"`
	Error  string   `json:"error,omitempty"`
	Worlds []string `json:"worlds,omitempty"`
}

// WorldLoader asks the host server to load worlds over request/reply.
type WorldLoader struct {
	req     Requester
	timeout time.Duration
}

func NewWorldLoader(req Requester, timeout time.Duration) *WorldLoader {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &WorldLoader{req: req, timeout: timeout}
}

// Load satisfies world.Loader.
func (l *WorldLoader) Load(ctx context.Context, name string) error {
	_, err := l.request(ctx, SubjectWorldLoad, worldRequest{World: name})
	return err
}

// LoadFor satisfies world.Loader.
func (l *WorldLoader) LoadFor(ctx context.Context, name string, actorId string) error {
	_, err := l.request(ctx, SubjectWorldLoadPlayer, worldRequest{World: name, Actor: actorId})
	return err
}

// LoadedWorlds satisfies world.Loader.
func (l *WorldLoader) LoadedWorlds(ctx context.Context) ([]string, error) {
	reply, err := l.request(ctx, SubjectWorldList, worldRequest{})
	if err != nil {
		return nil, err
	}
	return reply.Worlds, nil
}

func (l *WorldLoader) request(ctx context.Context, subject string, req worldRequest) (worldReply, error) {
	req.RequestId = uuid.New().String()

	data, err := json.Marshal(req)
	if err != nil {
		return worldReply{}, fmt.Errorf("marshalling request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.req.Request(ctx, subject, data)
	if err != nil {
		return worldReply{}, fmt.Errorf("requesting %s: %w", subject, err)
	}

	var reply worldReply
	if err := json.Unmarshal(resp, &reply); err != nil {
		return worldReply{}, fmt.Errorf("unmarshalling %s reply: %w", subject, err)
	}

	if !reply.Ok {
		if reply.Code == replyCodeNotFound {
			return reply, fmt.Errorf("%s %q: %w", subject, req.World, world.ErrWorldNotFound)
		}
		return reply, fmt.Errorf("%s %q: %s", subject, req.World, reply.Error)
	}

	return reply, nil
}
