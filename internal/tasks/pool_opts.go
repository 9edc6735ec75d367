package tasks

type PoolOpt func(*Pool)

// WithSize sets the number of worker goroutines.
func WithSize(n int) PoolOpt {
	return func(p *Pool) {
		if n > 0 {
			p.size = n
		}
	}
}

// WithQueueSize sets how many tasks may wait for a worker.
func WithQueueSize(n int) PoolOpt {
	return func(p *Pool) {
		if n > 0 {
			p.queueSize = n
		}
	}
}
