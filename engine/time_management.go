package engine

import (
	"context"
	"time"
)

type TimeHandler struct {
	start            time.Time
	timeForMove      time.Time
	ctx              context.Context
	stopSearch       bool
	usingCustomDepth bool
}

// StartTime arms the deadline. A non-positive budget disables the clock and
// leaves the search bounded by depth (and ctx) only.
func (th *TimeHandler) StartTime(ctx context.Context, budget time.Duration) {
	if ctx == nil {
		ctx = context.Background()
	}
	th.ctx = ctx
	th.start = time.Now()
	th.stopSearch = false
	th.usingCustomDepth = budget <= 0
	th.timeForMove = th.start.Add(budget)
}

// Elapsed returns the time since StartTime.
func (th *TimeHandler) Elapsed() time.Duration { return time.Since(th.start) }

/*
  - True if we're out of time (or the context is done) and we're not using a custom depth search
  - False if we still got time
*/
func (th *TimeHandler) TimeStatus() bool {
	if th.stopSearch {
		return true
	}
	if th.ctx != nil && th.ctx.Err() != nil {
		th.stopSearch = true
		return true
	}
	if !th.usingCustomDepth && th.timeForMove.Before(time.Now()) {
		th.stopSearch = true
		return true
	}
	return false
}
