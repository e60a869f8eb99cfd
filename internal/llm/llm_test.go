package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeProvider returns a canned response after an optional delay.
type fakeProvider struct {
	delay time.Duration
	calls int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return &CompletionResponse{Content: "ok", Model: req.Model}, nil
}

func TestWithTimeoutExpires(t *testing.T) {
	p := WithTimeout(&fakeProvider{delay: time.Second}, 20*time.Millisecond)

	_, err := p.Complete(context.Background(), CompletionRequest{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestWithTimeoutPassesThrough(t *testing.T) {
	p := WithTimeout(&fakeProvider{}, time.Second)

	resp, err := p.Complete(context.Background(), CompletionRequest{Model: "m"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("unexpected content %q", resp.Content)
	}
}

func TestWithTimeoutZeroIsNoop(t *testing.T) {
	inner := &fakeProvider{}
	if p := WithTimeout(inner, 0); p != Provider(inner) {
		t.Error("zero timeout should return the provider unchanged")
	}
}

func TestRateLimiterAllowsBurstWithinBudget(t *testing.T) {
	inner := &fakeProvider{}
	p := NewRateLimitedProvider(inner, 5)

	for i := 0; i < 5; i++ {
		if _, err := p.Complete(context.Background(), CompletionRequest{}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if inner.calls != 5 {
		t.Errorf("expected 5 calls, got %d", inner.calls)
	}
}

func TestRateLimiterBlocksUntilCancelled(t *testing.T) {
	p := NewRateLimitedProvider(&fakeProvider{}, 1)

	if _, err := p.Complete(context.Background(), CompletionRequest{}); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := p.Complete(ctx, CompletionRequest{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded while throttled, got %v", err)
	}
}

func TestNewProviderUnknownType(t *testing.T) {
	if _, err := NewProvider("cohere", "model"); err == nil {
		t.Error("expected error for unsupported provider type")
	}
}
