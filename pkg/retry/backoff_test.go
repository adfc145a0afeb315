package retry

import (
	"testing"
	"time"
)

func TestExponentialBackoffCaps(t *testing.T) {
	b := ExponentialBackoff{Base: time.Second, Max: 10 * time.Second}
	if got := b.Next(1); got != time.Second {
		t.Fatalf("attempt 1: got %s", got)
	}
	if got := b.Next(3); got != 4*time.Second {
		t.Fatalf("attempt 3: got %s", got)
	}
	if got := b.Next(10); got != 10*time.Second {
		t.Fatalf("attempt 10 should cap at max, got %s", got)
	}
	if got := b.Next(80); got != 10*time.Second {
		t.Fatalf("overflowed attempt should cap at max, got %s", got)
	}
}

func TestPolicyResetsOnSuccess(t *testing.T) {
	p := Policy{
		Interval: time.Minute,
		Backoff:  ExponentialBackoff{Base: time.Second, Max: 8 * time.Second},
	}
	if got := p.Fail(); got != time.Second {
		t.Fatalf("first failure: got %s", got)
	}
	if got := p.Fail(); got != 2*time.Second {
		t.Fatalf("second failure: got %s", got)
	}
	if p.Failures() != 2 {
		t.Fatalf("expected 2 failures, got %d", p.Failures())
	}
	if got := p.Succeed(); got != time.Minute {
		t.Fatalf("success should return interval, got %s", got)
	}
	if got := p.Fail(); got != time.Second {
		t.Fatalf("failure count should reset after success, got %s", got)
	}
}
