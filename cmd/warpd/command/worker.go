package command

import (
	"context"
	"fmt"

	"github.com/pixil98/go-service"
	"github.com/pixil98/go-warp/internal/commands"
	"github.com/pixil98/go-warp/internal/driver"
	"github.com/pixil98/go-warp/internal/messaging"
	"github.com/pixil98/go-warp/internal/warp"
	"github.com/pixil98/go-warp/internal/world"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Background tasks for flushes, world loads, and relocations
	pool := cfg.Pool.BuildPool()

	// Embedded nats server shared with the host server
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// World directory
	defs, err := cfg.Storage.Worlds.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating world store: %w", err)
	}
	loader, err := cfg.Nats.BuildWorldLoader(natsServer)
	if err != nil {
		return nil, fmt.Errorf("creating world loader: %w", err)
	}
	worlds := world.NewDirectory(defs, loader, pool)

	// Warp registry
	registry := warp.NewRegistry(context.Background(), cfg.Storage.Warps.BuildWarpStore(), worlds, pool)

	// Command surface
	catalog, err := cfg.Messages.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("creating message catalog: %w", err)
	}
	handler := commands.NewHandler(registry, catalog, messaging.NewNatsPublisher(natsServer, cfg.Messages.Width))

	driverOpts := []driver.DriverOpt{driver.WithReady(natsServer.Ready())}
	if d := cfg.tickInterval(); d > 0 {
		driverOpts = append(driverOpts, driver.WithTickLength(d))
	}

	return service.WorkerList{
		"pool":    pool,
		"nats":    natsServer,
		"watcher": messaging.NewWorldWatcher(natsServer, worlds),
		"intake":  messaging.NewIntake(natsServer, worlds, handler),
		"driver":  driver.NewDriver([]driver.Manager{worlds}, driverOpts...),
	}, nil
}
