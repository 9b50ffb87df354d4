package client

import (
	"context"
	"sync"
	"time"
)

// DefaultQuietPeriod is how long the searcher waits after the last
// keystroke before issuing a request.
const DefaultQuietPeriod = 500 * time.Millisecond

// Searcher debounces search-term updates into list fetches: rapid
// updates inside the quiet period coalesce into a single request using
// the last value. Requests are fenced with a monotonic sequence
// number, so a response from a superseded request is discarded even if
// it arrives after the newer one — the newest term always wins.
type Searcher struct {
	client  *Client
	ctx     func() context.Context
	quiet   time.Duration
	deliver func([]PriceItem, error)

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	seq     uint64
}

// NewSearcher builds a Searcher delivering results (or the wrapper's
// sentinel error) to deliver. ctx supplies the context for each fetch
// — pass Session.Context so logout aborts pending searches — and may
// be nil. quiet <= 0 selects DefaultQuietPeriod.
func NewSearcher(c *Client, ctx func() context.Context, quiet time.Duration, deliver func([]PriceItem, error)) *Searcher {
	if ctx == nil {
		ctx = context.Background
	}
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Searcher{client: c, ctx: ctx, quiet: quiet, deliver: deliver}
}

// Update records a new search term and (re)starts the quiet period.
func (s *Searcher) Update(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = term
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiet, s.fire)
}

// Stop cancels any pending fetch. In-flight responses are still fenced
// out normally.
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++
}

func (s *Searcher) fire() {
	s.mu.Lock()
	term := s.pending
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	res, err := s.client.Pricelist(s.ctx(), term)

	s.mu.Lock()
	stale := seq != s.seq
	s.mu.Unlock()
	if stale {
		return
	}

	if err != nil {
		s.deliver(nil, err)
		return
	}
	s.deliver(res.Data, nil)
}
