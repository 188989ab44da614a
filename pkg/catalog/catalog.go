// Package catalog rebuilds the visible listing view from the registry.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	logging "github.com/ipfs/go-log/v2"

	"github.com/storacha/appstore/pkg/content"
	"github.com/storacha/appstore/pkg/model"
	"github.com/storacha/appstore/pkg/render"
	"github.com/storacha/appstore/pkg/session"
)

var log = logging.Logger("catalog")

const (
	// DefaultRenderPace is the pause between two emitted rows.
	DefaultRenderPace = 800 * time.Millisecond
	// DefaultPageSize bounds the single page of listings read per refresh.
	DefaultPageSize = 500
)

// Registry is the read side of the registry the catalog needs.
type Registry interface {
	GetProjects(ctx context.Context, start, end uint64) ([]model.Listing, error)
	GetAdmin(ctx context.Context) (common.Address, error)
}

// Sink receives rendered rows. Reset clears the previous rendering.
type Sink interface {
	Reset()
	Append(v render.View)
}

type Catalog struct {
	registry Registry
	content  content.Store
	sink     Sink
	pace     time.Duration
	pageSize uint64
	loc      *time.Location
}

type Option func(*Catalog)

func WithRenderPace(d time.Duration) Option {
	return func(c *Catalog) {
		c.pace = d
	}
}

func WithPageSize(n uint64) Option {
	return func(c *Catalog) {
		c.pageSize = n
	}
}

func WithLocation(loc *time.Location) Option {
	return func(c *Catalog) {
		c.loc = loc
	}
}

func New(registry Registry, store content.Store, sink Sink, opts ...Option) *Catalog {
	c := &Catalog{
		registry: registry,
		content:  store,
		sink:     sink,
		pace:     DefaultRenderPace,
		pageSize: DefaultPageSize,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh reads the admin and the listing page, clears the sink and emits
// every listing visible to the session account in registry order. Listings
// whose blobs cannot be fetched are emitted with placeholders.
func (c *Catalog) Refresh(ctx context.Context, st *session.State) error {
	admin, err := c.registry.GetAdmin(ctx)
	if err != nil {
		return fmt.Errorf("refreshing admin: %w", err)
	}
	st.SetAdmin(admin)

	listings, err := c.registry.GetProjects(ctx, 0, c.pageSize)
	if err != nil {
		return fmt.Errorf("refreshing listings: %w", err)
	}

	c.sink.Reset()
	viewer := st.Account()
	emitted := 0
	for _, l := range listings {
		if !l.Visible(viewer, admin) {
			continue
		}
		if emitted > 0 {
			if err := c.wait(ctx); err != nil {
				return err
			}
		}
		c.sink.Append(c.render(ctx, l))
		emitted++
	}
	log.Infow("refreshed catalog", "listings", len(listings), "visible", emitted, "viewer", viewer)
	return nil
}

func (c *Catalog) render(ctx context.Context, l model.Listing) render.View {
	icon, err := content.FetchImage(ctx, c.content, l.IconHash)
	if err != nil {
		log.Warnw("failed to fetch icon", "id", l.ID, "hash", l.IconHash, "error", err)
		icon = content.Image{}
	}
	desc, err := content.FetchText(ctx, c.content, l.DescriptionHash)
	if err != nil {
		log.Warnw("failed to fetch description", "id", l.ID, "hash", l.DescriptionHash, "error", err)
		desc = ""
	}
	return render.Listing(l, icon, desc, c.loc)
}

func (c *Catalog) wait(ctx context.Context) error {
	if c.pace <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.pace)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// MemorySink keeps the rows of the latest rendering.
type MemorySink struct {
	mu     sync.Mutex
	views  []render.View
	resets int
}

var _ Sink = (*MemorySink)(nil)

func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = nil
	s.resets++
}

func (s *MemorySink) Append(v render.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = append(s.views, v)
}

func (s *MemorySink) Views() []render.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]render.View(nil), s.views...)
}

// Resets counts full refreshes observed by the sink.
func (s *MemorySink) Resets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resets
}
