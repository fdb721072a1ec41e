// Package ratelimit tracks failed login attempts per client identifier over
// a sliding window and blocks further attempts for a configured duration.
// State is process-local and lost on restart.
package ratelimit

import (
	"sync"
	"time"

	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"

	"go.uber.org/zap"
)

type Limiter struct {
	maxFailed int
	window    time.Duration
	block     time.Duration
	log       *zap.Logger

	// state maps identifier -> *entry. Each entry carries its own mutex so
	// the read-check-write sequence is atomic per identifier while unrelated
	// identifiers never contend.
	state sync.Map

	now func() time.Time
}

type entry struct {
	mu           sync.Mutex
	attempts     []time.Time
	blockedUntil time.Time

	// evicted marks an entry removed from the map while another goroutine
	// may still hold a stale pointer to it.
	evicted bool
}

// New creates a limiter that blocks an identifier for block after maxFailed
// failed attempts within window. All values must be positive.
func New(maxFailed int, window, block time.Duration, log *zap.Logger) *Limiter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Limiter{
		maxFailed: maxFailed,
		window:    window,
		block:     block,
		log:       log,
		now:       time.Now,
	}
}

// CheckAllowed returns a rate-limited error carrying the remaining block
// time if the identifier is inside an active block window. A block that has
// already expired is cleared as a side effect.
func (l *Limiter) CheckAllowed(identifier string) error {
	value, ok := l.state.Load(identifier)
	if !ok {
		return nil
	}
	e := value.(*entry)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.blockedUntil.IsZero() {
		return nil
	}

	now := l.now()
	if now.Before(e.blockedUntil) {
		return apperr.RateLimited(e.blockedUntil.Sub(now))
	}

	e.evicted = true
	l.state.Delete(identifier)
	return nil
}

// RegisterFailed records a failed attempt at the current time. Attempts that
// have slid out of the window are discarded; once the count reaches the
// threshold the identifier is blocked, overwriting any prior block state.
func (l *Limiter) RegisterFailed(identifier string) {
	now := l.now()

	for {
		value, _ := l.state.LoadOrStore(identifier, &entry{})
		e := value.(*entry)

		e.mu.Lock()
		if e.evicted {
			// Lost a race with an expiry cleanup; the entry is no longer in
			// the map, so fetch or create a fresh one.
			e.mu.Unlock()
			continue
		}

		windowStart := now.Add(-l.window)
		kept := e.attempts[:0]
		for _, at := range e.attempts {
			if !at.Before(windowStart) {
				kept = append(kept, at)
			}
		}
		e.attempts = append(kept, now)

		if len(e.attempts) >= l.maxFailed {
			e.blockedUntil = now.Add(l.block)
			l.log.Warn("client blocked after repeated failed logins",
				zap.String("identifier", identifier),
				zap.Int("failed_attempts", len(e.attempts)),
				zap.Time("blocked_until", e.blockedUntil),
			)
		}

		e.mu.Unlock()
		return
	}
}
