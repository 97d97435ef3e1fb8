// Package throttle rate-limits login attempts per key (client IP or account).
// Two stores share one interface: an in-process token bucket and a Redis
// fixed window for deployments with more than one replica.
package throttle

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter reports whether a key may make another attempt right now.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// Memory keeps one token bucket per key with idle-entry cleanup.
type Memory struct {
	mu        sync.Mutex
	entries   map[string]*memoryEntry
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
}

type memoryEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewMemory creates an in-process limiter refilling at rps with the given burst.
func NewMemory(rps float64, burst int) *Memory {
	return &Memory{
		entries: make(map[string]*memoryEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
	}
}

func (m *Memory) Allow(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	e, ok := m.entries[key]
	if !ok {
		e = &memoryEntry{lim: rate.NewLimiter(m.rps, m.burst)}
		m.entries[key] = e
	}
	e.lastSeen = now
	// Amortized cleanup: sweep idle buckets at most once per TTL.
	if now.Sub(m.lastSweep) > m.idleTTL {
		for k, other := range m.entries {
			if now.Sub(other.lastSeen) > m.idleTTL {
				delete(m.entries, k)
			}
		}
		m.lastSweep = now
	}
	return e.lim.Allow()
}
