// Package poller keeps the catalog in step with the registry by watching the
// registry's latest update marker.
package poller

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/storacha/appstore/pkg/session"
)

var log = logging.Logger("poller")

// DefaultInterval is the delay between the end of one cycle and the start of
// the next.
const DefaultInterval = 5 * time.Second

type MarkerSource interface {
	GetLastUpdateTime(ctx context.Context) (*big.Int, error)
}

type Refresher interface {
	Refresh(ctx context.Context, st *session.State) error
}

type Poller struct {
	source    MarkerSource
	refresher Refresher
	state     *session.State
	interval  time.Duration
	onError   func(error)

	// serializes cycles with refreshes triggered elsewhere
	mu sync.Mutex

	startOnce, stopOnce sync.Once
	stopping, stopped   chan struct{}
}

type Option func(*Poller)

func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		p.interval = d
	}
}

// OnError is called with the error of every failed scheduled cycle.
func OnError(fn func(error)) Option {
	return func(p *Poller) {
		p.onError = fn
	}
}

func New(source MarkerSource, refresher Refresher, st *session.State, opts ...Option) *Poller {
	p := &Poller{
		source:    source,
		refresher: refresher,
		state:     st,
		interval:  DefaultInterval,
		stopping:  make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Poll runs one cycle: it reads the remote marker and refreshes when it
// differs from the session marker. The marker only advances after a
// successful refresh, so a failed cycle is retried by the next one. A session
// reset during the refresh (account or chain change) leaves the marker unset so
// the next cycle renders for the new session.
func (p *Poller) Poll(ctx context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	remote, err := p.source.GetLastUpdateTime(ctx)
	if err != nil {
		return false, fmt.Errorf("reading update marker: %w", err)
	}
	if !p.state.Marker.Changed(remote) {
		return false, nil
	}
	log.Debugw("registry changed", "marker", remote, "previous", p.state.Marker.Value())
	epoch := p.state.Marker.Epoch()
	if err := p.refresher.Refresh(ctx, p.state); err != nil {
		return false, fmt.Errorf("refreshing catalog: %w", err)
	}
	if !p.state.Marker.Advance(remote, epoch) {
		log.Debugw("session reset during refresh, leaving marker unset", "marker", remote)
	}
	return true, nil
}

// Refresh forces a full refresh outside the polling schedule without
// touching the marker.
func (p *Poller) Refresh(ctx context.Context, st *session.State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refresher.Refresh(ctx, st)
}

// Start runs cycles until Stop or until ctx ends. The first cycle runs
// immediately.
func (p *Poller) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		go p.run(ctx)
	})
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.stopped)

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-p.stopping:
			return
		case <-ctx.Done():
			return
		case <-timer.C:
			refreshed, err := p.Poll(ctx)
			if err != nil {
				log.Errorw("poll cycle failed", "error", err)
				if p.onError != nil {
					p.onError(err)
				}
			} else if refreshed {
				log.Infow("catalog refreshed", "marker", p.state.Marker.Value())
			}
			timer.Reset(p.interval)
		}
	}
}

// Stop ends the polling loop and waits for an in-flight cycle to finish.
func (p *Poller) Stop(ctx context.Context) error {
	p.startOnce.Do(func() {
		close(p.stopped)
	})
	p.stopOnce.Do(func() {
		close(p.stopping)
	})
	select {
	case <-p.stopped:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
