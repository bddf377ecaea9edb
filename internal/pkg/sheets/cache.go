package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/rrservice/service-dashboard-go/internal/domain/ticket"
)

// CachedSource wraps a ticket.Source with a time-boxed cache so a burst
// of view requests reuses one extract. The cache is the only cross-cycle
// state in the system; the derivation layer downstream is pure.
type CachedSource struct {
	source ticket.Source
	ttl    time.Duration

	mu        sync.Mutex
	cached    ticket.Extract
	fetchedAt time.Time
}

func NewCachedSource(source ticket.Source, ttl time.Duration) *CachedSource {
	return &CachedSource{source: source, ttl: ttl}
}

// Fetch implements ticket.Source. A failed refresh is returned to the
// caller; it does not evict a still-fresh entry.
func (c *CachedSource) Fetch(ctx context.Context) (ticket.Extract, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl {
		return c.cached, nil
	}

	extract, err := c.source.Fetch(ctx)
	if err != nil {
		return ticket.Extract{}, err
	}

	c.cached = extract
	c.fetchedAt = time.Now()
	return extract, nil
}
