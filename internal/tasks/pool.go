package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

const (
	DefaultPoolSize  = 4
	DefaultQueueSize = 256
)

var (
	ErrPoolStopped = errors.New("task pool stopped")
	ErrQueueFull   = errors.New("task queue full")
)

// Pool runs tasks on a fixed number of goroutines. Tasks queued before Start
// are held until the pool starts. Once queued, a task always runs, even when
// the pool is shutting down.
type Pool struct {
	size      int
	queueSize int
	queue     chan func(context.Context)

	mu      sync.RWMutex
	stopped bool
}

func NewPool(opts ...PoolOpt) *Pool {
	p := &Pool{
		size:      DefaultPoolSize,
		queueSize: DefaultQueueSize,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.queue = make(chan func(context.Context), p.queueSize)
	return p
}

// Go queues task. It never blocks.
func (p *Pool) Go(task func(ctx context.Context)) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.queue <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start runs the workers until ctx is done, then drains the queue.
func (p *Pool) Start(ctx context.Context) error {
	// Tasks outlive the request that queued them and the pool's own shutdown.
	taskCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	for range p.size {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range p.queue {
				p.run(taskCtx, task)
			}
		}()
	}

	slog.InfoContext(ctx, "task pool started", "workers", p.size, "queue", cap(p.queue))

	<-ctx.Done()

	p.mu.Lock()
	p.stopped = true
	close(p.queue)
	p.mu.Unlock()

	wg.Wait()
	slog.InfoContext(taskCtx, "task pool drained")

	return nil
}

func (p *Pool) run(ctx context.Context, task func(context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "task panicked", "panic", r)
		}
	}()
	task(ctx)
}
