package session

import (
	"context"
	"sync"
	"time"
)

// DefaultChainPollInterval is how often the watcher checks the chain id.
const DefaultChainPollInterval = 5 * time.Second

// ChainWatcher resets the state when the connected chain changes.
type ChainWatcher struct {
	chain    ChainIDGetter
	state    *State
	interval time.Duration
	onChange func(ctx context.Context)

	startOnce, stopOnce sync.Once
	stopping, stopped   chan struct{}
}

type WatcherOption func(*ChainWatcher)

func WithInterval(d time.Duration) WatcherOption {
	return func(w *ChainWatcher) {
		w.interval = d
	}
}

// OnChainChanged runs after the state has been reset for the new chain.
func OnChainChanged(fn func(ctx context.Context)) WatcherOption {
	return func(w *ChainWatcher) {
		w.onChange = fn
	}
}

func NewChainWatcher(chain ChainIDGetter, state *State, opts ...WatcherOption) *ChainWatcher {
	w := &ChainWatcher{
		chain:    chain,
		state:    state,
		interval: DefaultChainPollInterval,
		stopping: make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *ChainWatcher) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		go w.run(ctx)
	})
}

func (w *ChainWatcher) run(ctx context.Context) {
	defer close(w.stopped)

	timer := time.NewTimer(w.interval)
	defer timer.Stop()
	for {
		select {
		case <-w.stopping:
			return
		case <-ctx.Done():
			return
		case <-timer.C:
			w.Check(ctx)
			timer.Reset(w.interval)
		}
	}
}

// Check compares the chain id once and reports whether it changed.
func (w *ChainWatcher) Check(ctx context.Context) bool {
	id, err := w.chain.ChainID(ctx)
	if err != nil {
		log.Warnw("failed to get chain id", "error", err)
		return false
	}
	prev := w.state.ChainID()
	if prev != nil && prev.Cmp(id) == 0 {
		return false
	}
	log.Infow("chain changed", "from", prev, "to", id)
	w.state.Reset(id)
	if w.onChange != nil {
		w.onChange(ctx)
	}
	return true
}

func (w *ChainWatcher) Stop(ctx context.Context) error {
	w.startOnce.Do(func() {
		close(w.stopped)
	})
	w.stopOnce.Do(func() {
		close(w.stopping)
	})
	select {
	case <-w.stopped:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
