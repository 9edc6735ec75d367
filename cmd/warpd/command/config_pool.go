package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-warp/internal/tasks"
)

type PoolConfig struct {
	Size      int `json:"size"`
	QueueSize int `json:"queue_size"`
}

func (c *PoolConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Size < 0 {
		el.Add(fmt.Errorf("pool size must not be negative"))
	}
	if c.QueueSize < 0 {
		el.Add(fmt.Errorf("pool queue_size must not be negative"))
	}

	return el.Err()
}

func (c *PoolConfig) BuildPool() *tasks.Pool {
	return tasks.NewPool(tasks.WithSize(c.Size), tasks.WithQueueSize(c.QueueSize))
}
