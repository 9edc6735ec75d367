package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-warp/internal/commands"
	"github.com/pixil98/go-warp/internal/game"
	"github.com/pixil98/go-warp/internal/player"
)

const (
	SubjectWarpCommand  = "warp.command"
	SubjectWarpComplete = "warp.complete"
)

// RequestHandler provides request/reply subscriptions.
type RequestHandler interface {
	Subscriber
	Handle(subject string, handler func(data []byte) []byte) (unsubscribe func(), err error)
	Publish(subject string, data []byte) error
}

// WorldResolver resolves the world a player reports standing in.
type WorldResolver interface {
	WorldTracker
	Live(name string) (game.World, bool)
}

// CommandRunner executes and completes warp commands.
type CommandRunner interface {
	Exec(ctx context.Context, s commands.Sender, args ...string) error
	Complete(s commands.Sender, args ...string) []string
}

type locationEnvelope struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float32 `json:"yaw"`
	Pitch float32 `json:"pitch"`
}

// commandEnvelope is what the host server sends for each warp command.
type commandEnvelope struct {
	Actor        string            `json:"actor"`
	Permissions  []string          `json:"permissions"`
	Location     *locationEnvelope `json:"location,omitempty"`
	FallDistance float64           `json:"fall_distance"`
	Args         []string          `json:"args"`
}

// Intake receives warp commands from the host server. Each subscription
// delivers its messages one at a time.
type Intake struct {
	nc     RequestHandler
	worlds WorldResolver
	runner CommandRunner
}

func NewIntake(nc RequestHandler, worlds WorldResolver, runner CommandRunner) *Intake {
	return &Intake{nc: nc, worlds: worlds, runner: runner}
}

func (in *Intake) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-in.nc.Ready():
	}

	unsubCmd, err := in.nc.Subscribe(SubjectWarpCommand, func(data []byte) {
		in.handleCommand(ctx, data)
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", SubjectWarpCommand, err)
	}
	defer unsubCmd()

	unsubComplete, err := in.nc.Handle(SubjectWarpComplete, func(data []byte) []byte {
		return in.handleComplete(ctx, data)
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", SubjectWarpComplete, err)
	}
	defer unsubComplete()

	slog.InfoContext(ctx, "accepting warp commands", "subject", SubjectWarpCommand)

	<-ctx.Done()
	return nil
}

func (in *Intake) handleCommand(ctx context.Context, data []byte) {
	s, args, err := in.session(data)
	if err != nil {
		slog.WarnContext(ctx, "ignoring malformed warp command", "error", err)
		return
	}

	if err := in.runner.Exec(ctx, s, args...); err != nil {
		slog.ErrorContext(ctx, "running warp command", "actor", s.Id(), "error", err)
	}
}

func (in *Intake) handleComplete(ctx context.Context, data []byte) []byte {
	suggestions := []string{}

	s, args, err := in.session(data)
	if err != nil {
		slog.WarnContext(ctx, "ignoring malformed completion request", "error", err)
	} else if found := in.runner.Complete(s, args...); found != nil {
		suggestions = found
	}

	resp, err := json.Marshal(suggestions)
	if err != nil {
		slog.ErrorContext(ctx, "marshalling completions", "error", err)
		return []byte("[]")
	}
	return resp
}

func (in *Intake) session(data []byte) (*player.Session, []string, error) {
	var env commandEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil, fmt.Errorf("unmarshalling envelope: %w", err)
	}
	if env.Actor == "" {
		return nil, nil, fmt.Errorf("actor is required")
	}

	var loc game.Location
	if env.Location != nil {
		loc = game.Location{
			X:     env.Location.X,
			Y:     env.Location.Y,
			Z:     env.Location.Z,
			Yaw:   env.Location.Yaw,
			Pitch: env.Location.Pitch,
		}
		if env.Location.World != "" {
			// A player standing in a world means the host has it loaded.
			in.worlds.MarkLoaded(env.Location.World)
			if w, ok := in.worlds.Live(env.Location.World); ok {
				loc.World = w
			}
		}
	}

	return player.NewSession(env.Actor, env.Permissions, loc, env.FallDistance, in.nc), env.Args, nil
}
