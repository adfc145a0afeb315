package retry

import "time"

// Backoff computes the delay before the next retry attempt.
type Backoff interface {
	Next(attempt int) time.Duration
}

// ExponentialBackoff grows delays by powers of two, capped at Max. The cap
// keeps a persistently failing upstream from turning into an unbounded
// retry-forever loop.
type ExponentialBackoff struct {
	Base time.Duration
	Max  time.Duration
}

// Next returns the delay for the given attempt (1-based).
func (b ExponentialBackoff) Next(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := b.Base
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	delay := base << (attempt - 1)
	if delay <= 0 || (b.Max > 0 && delay > b.Max) {
		return b.Max
	}
	return delay
}

// DefaultBackoff returns the default exponential retry policy.
func DefaultBackoff() Backoff {
	return ExponentialBackoff{
		Base: 100 * time.Millisecond,
		Max:  5 * time.Second,
	}
}

// Policy tracks consecutive failures for a periodic job and yields the delay
// before its next run: the steady interval while healthy, a growing bounded
// backoff while failing.
type Policy struct {
	Interval time.Duration
	Backoff  Backoff

	failures int
}

// Succeed records a successful run and returns the steady interval.
func (p *Policy) Succeed() time.Duration {
	p.failures = 0
	return p.Interval
}

// Fail records a failed run and returns the backoff delay for it.
func (p *Policy) Fail() time.Duration {
	p.failures++
	b := p.Backoff
	if b == nil {
		b = DefaultBackoff()
	}
	return b.Next(p.failures)
}

// Failures reports the current consecutive failure count.
func (p *Policy) Failures() int { return p.failures }
