package warp

import "context"

// Executor runs tasks in the background. Tasks receive a context that is not
// canceled when the dispatching request ends.
type Executor interface {
	Go(task func(ctx context.Context)) error
}
