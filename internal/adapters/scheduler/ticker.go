// Package scheduler runs periodic callbacks on time.Ticker.
package scheduler

import (
	"sync"
	"time"
)

// Option configures a Ticker
type Option func(*Ticker)

// WithDispatch routes every callback through dispatch instead of calling it
// on the ticker goroutine. The TUI uses this to run ticks on its update loop.
func WithDispatch(dispatch func(fn func())) Option {
	return func(t *Ticker) {
		t.dispatch = dispatch
	}
}

// Ticker implements ports.Scheduler
type Ticker struct {
	dispatch func(fn func())
}

// NewTicker creates a scheduler
func NewTicker(opts ...Option) *Ticker {
	t := &Ticker{dispatch: func(fn func()) { fn() }}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Every calls fn once per interval until stop is called. stop does not wait
// for a callback that is already running.
func (t *Ticker) Every(interval time.Duration, fn func()) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				t.dispatch(fn)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
