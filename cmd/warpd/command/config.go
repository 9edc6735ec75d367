package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string         `json:"tick_interval"`
	Storage      StorageConfig  `json:"storage"`
	Nats         NatsConfig     `json:"nats"`
	Pool         PoolConfig     `json:"pool"`
	Messages     MessagesConfig `json:"messages"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
		}
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Nats.Validate())
	el.Add(c.Pool.Validate())
	el.Add(c.Messages.Validate())

	return el.Err()
}

func (c *Config) tickInterval() time.Duration {
	// Validate has already rejected unparseable values.
	d, _ := time.ParseDuration(c.TickInterval)
	return d
}
