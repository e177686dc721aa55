package about

import (
	"context"
	"sync"

	"github.com/nfrund/safebite/internal/locale"
	"github.com/nfrund/safebite/internal/pubsub"
)

// Stats counts About page views per locale from PageViewed events.
type Stats struct {
	mu       sync.RWMutex
	views    map[locale.Locale]int64
	switches int64
}

// StatsSnapshot is the JSON form of Stats.
type StatsSnapshot struct {
	Views    map[string]int64 `json:"views"`
	Switches int64            `json:"switches"`
	Total    int64            `json:"total"`
}

// NewStats creates an empty counter set.
func NewStats() *Stats {
	return &Stats{views: make(map[locale.Locale]int64)}
}

// Record counts one view.
func (s *Stats) Record(e PageViewed) {
	l := locale.Normalize(e.Locale, locale.Default)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[l]++
	if e.Switched {
		s.switches++
	}
}

// Snapshot returns a copy of the counters. Every supported locale is present.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := StatsSnapshot{Views: make(map[string]int64, len(s.views)), Switches: s.switches}
	for _, l := range locale.Supported() {
		snap.Views[l.String()] = s.views[l]
		snap.Total += s.views[l]
	}
	return snap
}

// Subscribe feeds PageViewed events from sub into s until ctx is canceled.
func (s *Stats) Subscribe(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, PageViewedEvent, func(_ context.Context, e PageViewed, _ pubsub.Message) error {
		s.Record(e)
		return nil
	})
}
