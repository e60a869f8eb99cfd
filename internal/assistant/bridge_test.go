package assistant

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/brayanj4y/code-assist/internal/llm"
	"github.com/brayanj4y/code-assist/internal/project"
)

// scriptedProvider returns a fixed reply or error, optionally blocking
// until released.
type scriptedProvider struct {
	reply   string
	err     error
	release chan struct{}

	mu         sync.Mutex
	lastPrompt string
}

func (f *scriptedProvider) Name() string { return "scripted" }

func (f *scriptedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	for _, m := range req.Messages {
		if m.Role == llm.RoleUser {
			f.lastPrompt = m.Content
		}
	}
	f.mu.Unlock()

	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.reply, Model: req.Model}, nil
}

// recordingBuffers captures applied writes.
type recordingBuffers struct {
	writes map[project.FileID]string
}

func newRecordingBuffers() *recordingBuffers {
	return &recordingBuffers{writes: make(map[project.FileID]string)}
}

func (r *recordingBuffers) UpdateBuffer(id project.FileID, text string) {
	r.writes[id] = text
}

func TestSendTurnSuccess(t *testing.T) {
	provider := &scriptedProvider{reply: "Try this:\n```css\nbody { margin: 0; }\n```\n"}
	bridge := NewBridge(provider, "test-model", newRecordingBuffers())

	sources := project.SourceBundle{HTML: "<p></p>", CSS: "old", JS: "x()"}
	msg, err := bridge.SendTurn(context.Background(), "tidy my css", sources)
	if err != nil {
		t.Fatalf("SendTurn: %v", err)
	}
	if msg.Role != RoleAssistant {
		t.Errorf("expected assistant role, got %s", msg.Role)
	}
	if msg.Code == nil || msg.Code.CSS == nil {
		t.Fatal("expected extracted css block")
	}
	if *msg.Code.CSS != "body { margin: 0; }\n" {
		t.Errorf("unexpected css: %q", *msg.Code.CSS)
	}
	if msg.ContentHTML == "" {
		t.Error("expected rendered markdown")
	}
	if bridge.LastError() != "" {
		t.Errorf("unexpected error state: %q", bridge.LastError())
	}

	// The prompt carries all three fenced buffers plus the instruction.
	for _, want := range []string{"```html\n<p></p>\n```", "```css\nold\n```", "```javascript\nx()\n```", "tidy my css"} {
		if !strings.Contains(provider.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// welcome + user + assistant
	if got := len(bridge.History()); got != 3 {
		t.Errorf("expected 3 messages, got %d", got)
	}
}

func TestSendTurnRejectsEmptyPrompt(t *testing.T) {
	bridge := NewBridge(&scriptedProvider{reply: "x"}, "m", newRecordingBuffers())

	if _, err := bridge.SendTurn(context.Background(), "   \n\t", project.SourceBundle{}); !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("expected ErrEmptyPrompt, got %v", err)
	}
	if got := len(bridge.History()); got != 1 {
		t.Errorf("rejected turn must not touch history, got %d messages", got)
	}
}

func TestSendTurnProviderFailure(t *testing.T) {
	bridge := NewBridge(&scriptedProvider{err: errors.New("http 500")}, "m", newRecordingBuffers())

	msg, err := bridge.SendTurn(context.Background(), "help", project.SourceBundle{})
	if err != nil {
		t.Fatalf("a provider failure must not surface as an error: %v", err)
	}
	if msg.Content != apologyMessage {
		t.Errorf("expected fixed apology, got %q", msg.Content)
	}
	if bridge.LastError() == "" {
		t.Error("expected non-empty error state")
	}
	if bridge.Busy() {
		t.Error("inFlight must be cleared after a failure")
	}
}

func TestSendTurnEmptyReplyFallback(t *testing.T) {
	bridge := NewBridge(&scriptedProvider{reply: "  "}, "m", newRecordingBuffers())

	msg, err := bridge.SendTurn(context.Background(), "hi", project.SourceBundle{})
	if err != nil {
		t.Fatalf("SendTurn: %v", err)
	}
	if msg.Content != fallbackReply {
		t.Errorf("expected fallback reply, got %q", msg.Content)
	}
}

func TestSendTurnSingleFlight(t *testing.T) {
	provider := &scriptedProvider{reply: "done", release: make(chan struct{})}
	bridge := NewBridge(provider, "m", newRecordingBuffers())

	done := make(chan struct{})
	go func() {
		defer close(done)
		bridge.SendTurn(context.Background(), "first", project.SourceBundle{})
	}()

	// Wait for the first turn to take the in-flight slot.
	for !bridge.Busy() {
		runtime.Gosched()
	}

	if _, err := bridge.SendTurn(context.Background(), "second", project.SourceBundle{}); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	close(provider.release)
	<-done

	if bridge.Busy() {
		t.Error("inFlight must clear once the turn completes")
	}
}

func TestApplyExtractedCode(t *testing.T) {
	buffers := newRecordingBuffers()
	bridge := NewBridge(&scriptedProvider{}, "m", buffers)

	html := "<p>new</p>"
	js := "alert(1)"
	applied := bridge.ApplyExtractedCode(CodeBlocks{HTML: &html, JS: &js})

	if len(applied) != 2 {
		t.Fatalf("expected 2 applied fields, got %v", applied)
	}
	if buffers.writes[project.FileHTML] != html || buffers.writes[project.FileJS] != js {
		t.Errorf("unexpected writes: %v", buffers.writes)
	}
	if _, ok := buffers.writes[project.FileCSS]; ok {
		t.Error("absent field must not be written")
	}
}

func TestApplyNothing(t *testing.T) {
	bridge := NewBridge(&scriptedProvider{}, "m", newRecordingBuffers())

	if applied := bridge.ApplyExtractedCode(CodeBlocks{}); len(applied) != 0 {
		t.Errorf("expected empty applied set, got %v", applied)
	}
}
