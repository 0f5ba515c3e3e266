// Package lifecycle provides a one-shot gate tied to a readiness signal.
package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
)

// State is the gate's lifecycle state.
type State int32

const (
	// Pending means the gated function has not finished.
	Pending State = iota
	// Done means the gated function has run to completion. Terminal.
	Done
)

func (s State) String() string {
	if s == Done {
		return "done"
	}
	return "pending"
}

// Gate runs a function at most once, as soon as a readiness signal fires.
// The zero value is ready to use.
type Gate struct {
	state   atomic.Int32
	initMu  sync.Mutex
	doneCh  chan struct{}
	started atomic.Bool
}

func (g *Gate) done() chan struct{} {
	g.initMu.Lock()
	defer g.initMu.Unlock()
	if g.doneCh == nil {
		g.doneCh = make(chan struct{})
	}
	return g.doneCh
}

// Run invokes fn exactly once over the gate's lifetime. If ready is already
// closed (or nil) fn runs synchronously before Run returns; otherwise it is
// deferred to a goroutine that waits for ready. Later calls are no-ops.
func (g *Gate) Run(ready <-chan struct{}, fn func()) {
	if !g.started.CompareAndSwap(false, true) {
		return
	}

	if ready == nil {
		g.invoke(fn)
		return
	}

	select {
	case <-ready:
		g.invoke(fn)
	default:
		go func() {
			<-ready
			g.invoke(fn)
		}()
	}
}

func (g *Gate) invoke(fn func()) {
	defer func() {
		g.state.Store(int32(Done))
		close(g.done())
	}()
	fn()
}

// State reports whether the gated function has completed.
func (g *Gate) State() State {
	return State(g.state.Load())
}

// Wait blocks until the gate is Done or ctx ends.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
