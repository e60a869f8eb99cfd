package llm

import (
	"context"
	"sync"
	"time"
)

// tokenPollInterval is how often a blocked turn re-checks the bucket.
const tokenPollInterval = 100 * time.Millisecond

// RateLimitedProvider caps completion calls at a fixed number of
// requests per minute. Each assistant turn costs one token; a turn that
// arrives with the bucket empty blocks until a token refills or its
// context is cancelled, so a chatty session degrades to waiting instead
// of burning through provider quota.
type RateLimitedProvider struct {
	provider Provider
	rpm      int

	mu       sync.Mutex
	tokens   int
	lastFill time.Time
}

// NewRateLimitedProvider wraps the given provider with a limiter that
// allows at most rpm requests per minute, with an initial burst of rpm.
func NewRateLimitedProvider(provider Provider, rpm int) Provider {
	return &RateLimitedProvider{
		provider: provider,
		rpm:      rpm,
		tokens:   rpm,
		lastFill: time.Now(),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *RateLimitedProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if err := r.acquire(ctx); err != nil {
		return nil, err
	}
	return r.provider.Complete(ctx, req)
}

// acquire blocks until a token is available or ctx is cancelled.
func (r *RateLimitedProvider) acquire(ctx context.Context) error {
	for {
		if r.takeToken() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(tokenPollInterval):
		}
	}
}

// takeToken refills the bucket for the time elapsed since the last fill
// and claims one token if any are available. Refill is continuous at
// rpm per minute rather than in whole-minute windows, so a burst does
// not lock the assistant out for a full minute.
func (r *RateLimitedProvider) takeToken() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	refill := int(now.Sub(r.lastFill).Seconds() * float64(r.rpm) / 60.0)
	if refill > 0 {
		r.tokens = min(r.tokens+refill, r.rpm)
		r.lastFill = now
	}

	if r.tokens == 0 {
		return false
	}
	r.tokens--
	return true
}
