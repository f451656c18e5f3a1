// Package notice collects the transient messages cart and checkout
// operations raise for the user: short-lived, classified, deduplicated
// against rapid double-firing.
package notice

import (
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
	Warning Kind = "warning"
)

type Notice struct {
	Kind    Kind      `json:"type"`
	Message string    `json:"message"`
	At      time.Time `json:"-"`
}

const (
	lifetime     = 3600 * time.Millisecond
	dedupeWindow = 500 * time.Millisecond
	recentSize   = 8
)

// Center queues notices for one session. A message identical to one pushed
// within the dedupe window is dropped; the ring of recent pushes keeps that
// check bounded.
type Center struct {
	mu      sync.Mutex
	now     func() time.Time
	pending []Notice
	recent  [recentSize]recentPush
	next    int
}

type recentPush struct {
	message string
	at      time.Time
}

// NewCenter builds a Center. A nil clock means wall time.
func NewCenter(clock func() time.Time) *Center {
	if clock == nil {
		clock = time.Now
	}
	return &Center{now: clock}
}

func (c *Center) Push(kind Kind, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for _, r := range c.recent {
		if r.message == message && !r.at.IsZero() && now.Sub(r.at) < dedupeWindow {
			return
		}
	}
	c.recent[c.next] = recentPush{message: message, at: now}
	c.next = (c.next + 1) % recentSize
	c.pending = append(c.pending, Notice{Kind: kind, Message: message, At: now})
}

// Flush returns the notices that have not yet expired, oldest first, and
// empties the queue.
func (c *Center) Flush() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var out []Notice
	for _, n := range c.pending {
		if now.Sub(n.At) < lifetime {
			out = append(out, n)
		}
	}
	c.pending = nil
	return out
}

// Registry hands out one Center per session.
type Registry struct {
	mu      sync.Mutex
	clock   func() time.Time
	centers map[string]*Center
}

func NewRegistry(clock func() time.Time) *Registry {
	return &Registry{clock: clock, centers: make(map[string]*Center)}
}

func (r *Registry) For(sessionID string) *Center {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.centers[sessionID]
	if !ok {
		c = NewCenter(r.clock)
		r.centers[sessionID] = c
	}
	return c
}
