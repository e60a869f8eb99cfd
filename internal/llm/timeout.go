package llm

import (
	"context"
	"time"
)

// TimeoutProvider wraps a Provider with a per-request deadline so a hung
// remote call cannot block the caller indefinitely.
type TimeoutProvider struct {
	provider Provider
	timeout  time.Duration
}

// WithTimeout wraps the given provider with a per-request timeout.
// A non-positive timeout returns the provider unchanged.
func WithTimeout(provider Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return provider
	}
	return &TimeoutProvider{provider: provider, timeout: timeout}
}

func (t *TimeoutProvider) Name() string {
	return t.provider.Name()
}

func (t *TimeoutProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.provider.Complete(ctx, req)
}
