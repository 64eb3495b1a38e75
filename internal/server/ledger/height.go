// Package ledger supplies the ledger height stamped on entries at creation.
package ledger

import (
	"context"
	"errors"
	"sync"
	"time"
)

// HeightSource reports the current ledger height. Successive calls never
// return a smaller value.
type HeightSource interface {
	Height(ctx context.Context) (int64, error)
}

// Static is a HeightSource frozen at one height.
type Static int64

func (s Static) Height(context.Context) (int64, error) { return int64(s), nil }

// Clock derives the height from wall time: one block per interval since genesis.
// Times before genesis are height 0. A wall clock stepping backwards cannot
// lower the reported height.
type Clock struct {
	genesis  time.Time
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last int64
}

// NewClock returns a Clock starting at genesis with the given block interval.
func NewClock(genesis time.Time, interval time.Duration) (*Clock, error) {
	if interval <= 0 {
		return nil, errors.New("block interval must be positive")
	}
	return &Clock{genesis: genesis, interval: interval, now: time.Now}, nil
}

func (c *Clock) Height(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	elapsed := c.now().Sub(c.genesis)
	var h int64
	if elapsed > 0 {
		h = int64(elapsed / c.interval)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if h < c.last {
		h = c.last
	}
	c.last = h
	return h, nil
}
