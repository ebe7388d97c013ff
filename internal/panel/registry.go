package panel

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type registryEntry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry keeps one Controller per visitor session.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	opts    []Option
	now     func() time.Time
	log     *zap.Logger
}

// NewRegistry builds a Registry whose controllers are created with opts.
func NewRegistry(log *zap.Logger, opts ...Option) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		entries: map[string]*registryEntry{},
		opts:    opts,
		now:     time.Now,
		log:     log,
	}
}

// Get returns the controller for sessionID, creating it on first use.
func (r *Registry) Get(sessionID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &registryEntry{ctrl: NewController(r.opts...)}
		r.entries[sessionID] = e
	}
	e.lastSeen = r.now()
	return e.ctrl
}

// Len reports how many sessions hold a controller.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep stops and drops controllers unused for longer than idle. It returns
// the number evicted.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)
	var stale []*Controller

	r.mu.Lock()
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e.ctrl)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for _, c := range stale {
		c.Stop()
	}
	return len(stale)
}

// Run sweeps every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval, idle time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(idle); n > 0 {
				r.log.Info("evicted idle panel sessions", zap.Int("count", n))
			}
		}
	}
}
