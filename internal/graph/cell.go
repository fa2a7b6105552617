package graph

import (
	"context"
	"sync"
)

// cell is the single-slot rendezvous between one producer and any number of
// consumers. It is settled at most once per run; a reader that arrives
// before or after the settle observes the same value. Cells are allocated
// fresh for every run, so no value can leak between runs.
type cell struct {
	once sync.Once
	done chan struct{}
	val  string
}

func newCell() *cell {
	return &cell{done: make(chan struct{})}
}

// settle stores the value and releases every waiter. Calls after the first
// are no-ops.
func (c *cell) settle(v string) {
	c.once.Do(func() {
		c.val = v
		close(c.done)
	})
}

// wait blocks until the cell is settled or ctx is done.
func (c *cell) wait(ctx context.Context) (string, error) {
	select {
	case <-c.done:
		return c.val, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// value reports the settled value without blocking.
func (c *cell) value() (string, bool) {
	select {
	case <-c.done:
		return c.val, true
	default:
		return "", false
	}
}
