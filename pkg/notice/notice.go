// Package notice carries user facing status: the busy indicator and
// transient result notices.
package notice

import (
	"sync"
	"time"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("notice")

// DefaultTTL is how long a notice stays up before it clears itself.
const DefaultTTL = 5 * time.Second

const (
	Succeed = "SUCCEED"
	Fail    = "FAIL"
)

// Busy is the indicator that blocks conflicting actions while a workflow runs.
type Busy interface {
	SetBusy(busy bool)
	IsBusy() bool
}

// Notifier shows notices. Transient ones clear themselves, blocking ones
// stay until superseded.
type Notifier interface {
	Notify(msg string)
	Blocking(msg string)
}

// Level distinguishes transient notices from ones the user must acknowledge.
type Level int

const (
	LevelTransient Level = iota
	LevelBlocking
)

type Notice struct {
	Message string
	Level   Level
	Posted  time.Time
}

// Board holds the current notice and busy flag. A later notice supersedes an
// earlier one and transient notices clear after the TTL.
type Board struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notice
	timer   *time.Timer
	gen     uint64
	busy    int
	onPost  func(Notice)
}

var (
	_ Busy     = (*Board)(nil)
	_ Notifier = (*Board)(nil)
)

type Option func(*Board)

func WithTTL(ttl time.Duration) Option {
	return func(b *Board) {
		b.ttl = ttl
	}
}

// OnPost is called for every posted notice, outside the board lock.
func OnPost(fn func(Notice)) Option {
	return func(b *Board) {
		b.onPost = fn
	}
}

func NewBoard(opts ...Option) *Board {
	b := &Board{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) Notify(msg string) {
	b.post(Notice{Message: msg, Level: LevelTransient, Posted: time.Now()})
}

// Blocking posts a notice that stays until superseded.
func (b *Board) Blocking(msg string) {
	b.post(Notice{Message: msg, Level: LevelBlocking, Posted: time.Now()})
}

func (b *Board) post(n Notice) {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
	b.current = &n
	if n.Level == LevelTransient && b.ttl > 0 {
		gen := b.gen
		b.timer = time.AfterFunc(b.ttl, func() { b.expire(gen) })
	}
	onPost := b.onPost
	b.mu.Unlock()

	log.Debugw("notice", "message", n.Message, "level", n.Level)
	if onPost != nil {
		onPost(n)
	}
}

func (b *Board) expire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen {
		return
	}
	b.current = nil
	b.timer = nil
}

// Current returns the notice on display, if any.
func (b *Board) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Notice{}, false
	}
	return *b.current, true
}

// Clear removes the current notice.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
	b.current = nil
}

// SetBusy nests: the board stays busy until every SetBusy(true) is matched.
func (b *Board) SetBusy(busy bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if busy {
		b.busy++
		return
	}
	if b.busy == 0 {
		log.Warn("busy cleared while not busy")
		return
	}
	b.busy--
}

func (b *Board) IsBusy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.busy > 0
}
