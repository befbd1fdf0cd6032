// Package suggest drives the debounced address autosuggest. Each new
// query restarts the debounce timer and aborts the in-flight provider
// call; results from a superseded query are discarded even when they
// arrive after a newer query already resolved.
package suggest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pvzadmin/pkg/logger"
)

// DefaultDebounce is how long after the last keystroke a query settles
// before the provider is asked.
const DefaultDebounce = 350 * time.Millisecond

const (
	minQueryLength = 3
	resultLimit    = 8
)

// Provider answers completed queries with assembled address strings.
type Provider interface {
	Suggest(ctx context.Context, text string, limit int) ([]string, error)
}

// Suggester debounces keystrokes and delivers at most one result set
// per settled query via the deliver callback. Deliveries happen on the
// suggester's own goroutines; an empty slice clears the suggestions.
type Suggester struct {
	provider Provider
	debounce time.Duration
	deliver  func([]string)
	log      *logger.Logger

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	seq    uint64
	closed bool
}

func New(provider Provider, debounce time.Duration, deliver func([]string), log *logger.Logger) *Suggester {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Suggester{
		provider: provider,
		debounce: debounce,
		deliver:  deliver,
		log:      log,
	}
}

// Query registers a keystroke. Queries shorter than three characters
// cancel any pending work and clear the suggestions immediately.
func (s *Suggester) Query(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.supersedeLocked()
	s.seq++

	if len([]rune(text)) < minQueryLength {
		s.mu.Unlock()
		s.deliver(nil)
		return
	}

	seq := s.seq
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fetch(ctx, seq, text)
	})
	s.mu.Unlock()
}

func (s *Suggester) fetch(ctx context.Context, seq uint64, text string) {
	results, err := s.provider.Suggest(ctx, text, resultLimit)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.log.Debug("suggest lookup failed",
			slog.String("query", text),
			slog.String("error", err.Error()))
		results = nil
	}

	s.mu.Lock()
	stale := s.closed || seq != s.seq
	s.mu.Unlock()
	if stale {
		return
	}
	if len(results) > resultLimit {
		results = results[:resultLimit]
	}
	s.deliver(results)
}

// Close cancels pending work; subsequent queries are ignored.
func (s *Suggester) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersedeLocked()
	s.closed = true
}

func (s *Suggester) supersedeLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
