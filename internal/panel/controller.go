// Package panel owns the open/close lifecycle of the slide-in detail panel.
package panel

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mcosta-dev/portfolio/internal/detail"
)

// DefaultCloseDelay matches the panel's slide-out transition.
const DefaultCloseDelay = 300 * time.Millisecond

// Phase is the controller's position in the open/close cycle.
type Phase int

const (
	Closed Phase = iota
	Open
	// Closing: hidden but still holding the record until the delay elapses.
	Closing
)

func (p Phase) String() string {
	switch p {
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

// State is a read-only snapshot handed to the view.
type State struct {
	IsOpen       bool
	Current      *detail.Record
	Phase        Phase
	ScrollLocked bool
}

// ScrollLock is the page-level scroll flag the panel suspends while open.
type ScrollLock interface {
	Lock()
	Unlock()
	Locked() bool
}

// PageScroll is the default ScrollLock: one flag per page.
type PageScroll struct {
	mu     sync.Mutex
	locked bool
}

func (s *PageScroll) Lock()   { s.mu.Lock(); s.locked = true; s.mu.Unlock() }
func (s *PageScroll) Unlock() { s.mu.Lock(); s.locked = false; s.mu.Unlock() }

func (s *PageScroll) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Timer is a cancellable one-shot task.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Option configures a Controller.
type Option func(*Controller)

// WithCloseDelay sets how long a closed panel keeps its record.
func WithCloseDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.closeDelay = d
		}
	}
}

// WithScrollLock replaces the default PageScroll.
func WithScrollLock(l ScrollLock) Option {
	return func(c *Controller) {
		if l != nil {
			c.scroll = l
		}
	}
}

// WithScheduler replaces time.AfterFunc, mainly for tests.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithLogger attaches a logger for transition tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller is the only writer of a panel's state. Open and Close are the
// sole mutators; State returns copies.
type Controller struct {
	mu         sync.Mutex
	phase      Phase
	current    *detail.Record
	pending    Timer
	gen        uint64
	closeDelay time.Duration
	scroll     ScrollLock
	sched      Scheduler
	log        *zap.Logger
}

// NewController returns a Controller in the Closed phase.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		closeDelay: DefaultCloseDelay,
		scroll:     &PageScroll{},
		sched:      realScheduler{},
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CloseDelay returns the configured close-transition duration.
func (c *Controller) CloseDelay() time.Duration { return c.closeDelay }

// Open shows rec, replacing whatever was displayed. A deferred clear left by
// an earlier Close is cancelled so it cannot erase rec.
func (c *Controller) Open(rec detail.Record) {
	r := rec.Clone()

	c.mu.Lock()
	c.cancelPendingLocked()
	c.current = &r
	c.phase = Open
	c.scroll.Lock()
	c.mu.Unlock()

	c.log.Debug("panel opened", zap.String("kind", string(r.Kind)), zap.String("id", r.ID))
}

// Close hides the panel immediately and clears its record once the close
// delay has elapsed. Calling Close while already closing or closed does
// nothing.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != Open {
		return
	}
	c.phase = Closing
	c.gen++
	gen := c.gen
	c.pending = c.sched.AfterFunc(c.closeDelay, func() { c.finishClose(gen) })
	c.log.Debug("panel closing", zap.Duration("delay", c.closeDelay))
}

func (c *Controller) finishClose(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.phase != Closing {
		// superseded by a later Open
		c.mu.Unlock()
		return
	}
	c.clearLocked()
	c.mu.Unlock()

	c.log.Debug("panel closed")
}

func (c *Controller) clearLocked() {
	c.phase = Closed
	c.current = nil
	c.pending = nil
	c.scroll.Unlock()
}

func (c *Controller) cancelPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	// invalidate a clear that already fired but has not taken the lock yet
	c.gen++
}

// State returns a snapshot of the panel.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := State{IsOpen: c.phase == Open, Phase: c.phase, ScrollLocked: c.scroll.Locked()}
	if c.current != nil {
		r := c.current.Clone()
		s.Current = &r
	}
	return s
}

// Stop cancels any pending clear. A panel caught mid-close is finished
// immediately; an open panel stays open.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
	if c.phase == Closing {
		c.clearLocked()
	}
}
