package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/brayanj4y/code-assist/internal/llm"
	"github.com/brayanj4y/code-assist/internal/project"
)

const (
	welcomeMessage = "Hi! I'm your AI coding assistant. I can help you write, debug, and improve your code. What would you like to do?"
	apologyMessage = "Sorry, I encountered an error while generating a response. Please try again."
	fallbackReply  = "Sorry, I couldn't generate a response."

	inlineErrorMessage = "Failed to generate a response. Please try again."

	replyMaxTokens   = 2048
	replyTemperature = 0.7
)

var (
	// ErrBusy is returned while a previous turn is still in flight.
	ErrBusy = errors.New("a request is already in progress")
	// ErrEmptyPrompt is returned for empty or whitespace-only input.
	ErrEmptyPrompt = errors.New("prompt is empty")
)

// BufferWriter is the slice of the project store the bridge writes
// extracted code through.
type BufferWriter interface {
	UpdateBuffer(id project.FileID, text string)
}

// Bridge drives the assistant conversation: it sends the current buffers
// plus a user instruction to the text-generation provider, extracts fenced
// code from the reply, and applies accepted code back into the buffers.
// At most one turn is in flight at a time.
type Bridge struct {
	provider llm.Provider
	model    string
	buffers  BufferWriter

	mu       sync.Mutex
	inFlight bool
	history  []ChatMessage
	lastErr  string
}

// NewBridge creates a Bridge seeded with the welcome message.
func NewBridge(provider llm.Provider, model string, buffers BufferWriter) *Bridge {
	return &Bridge{
		provider: provider,
		model:    model,
		buffers:  buffers,
		history: []ChatMessage{{
			ID:          "welcome",
			Role:        RoleAssistant,
			Content:     welcomeMessage,
			ContentHTML: renderMarkdown(welcomeMessage),
		}},
	}
}

// SendTurn appends the user's message, issues one request to the provider
// and appends the assistant's reply. On a provider failure the reply is a
// fixed apology and LastError carries the inline error text; the failure
// is not returned as an error and is never retried automatically.
func (b *Bridge) SendTurn(ctx context.Context, userText string, sources project.SourceBundle) (*ChatMessage, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return nil, ErrEmptyPrompt
	}

	b.mu.Lock()
	if b.inFlight {
		b.mu.Unlock()
		return nil, ErrBusy
	}
	b.inFlight = true
	b.lastErr = ""
	b.history = append(b.history, ChatMessage{
		ID:      uuid.New().String(),
		Role:    RoleUser,
		Content: userText,
	})
	b.mu.Unlock()

	resp, err := b.provider.Complete(ctx, llm.CompletionRequest{
		Model: b.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: buildContext(sources) + "\n\n" + userText},
		},
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	})

	b.mu.Lock()
	defer func() {
		b.inFlight = false
		b.mu.Unlock()
	}()

	if err != nil {
		b.lastErr = inlineErrorMessage
		msg := ChatMessage{
			ID:          uuid.New().String(),
			Role:        RoleAssistant,
			Content:     apologyMessage,
			ContentHTML: renderMarkdown(apologyMessage),
		}
		b.history = append(b.history, msg)
		return &msg, nil
	}

	text := resp.Content
	if strings.TrimSpace(text) == "" {
		text = fallbackReply
	}

	msg := ChatMessage{
		ID:          uuid.New().String(),
		Role:        RoleAssistant,
		Content:     text,
		ContentHTML: renderMarkdown(text),
	}
	if blocks := ExtractCodeBlocks(text); !blocks.Empty() {
		msg.Code = &blocks
	}
	b.history = append(b.history, msg)
	return &msg, nil
}

// ApplyExtractedCode overwrites the buffer for each present field and
// returns which fields were applied. An empty result signals "nothing to
// apply" to the caller.
func (b *Bridge) ApplyExtractedCode(blocks CodeBlocks) []project.FileID {
	applied := []project.FileID{}
	if blocks.HTML != nil {
		b.buffers.UpdateBuffer(project.FileHTML, *blocks.HTML)
		applied = append(applied, project.FileHTML)
	}
	if blocks.CSS != nil {
		b.buffers.UpdateBuffer(project.FileCSS, *blocks.CSS)
		applied = append(applied, project.FileCSS)
	}
	if blocks.JS != nil {
		b.buffers.UpdateBuffer(project.FileJS, *blocks.JS)
		applied = append(applied, project.FileJS)
	}
	return applied
}

// History returns a copy of the conversation.
func (b *Bridge) History() []ChatMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]ChatMessage, len(b.history))
	copy(out, b.history)
	return out
}

// LastError returns the inline error text of the most recent failed turn,
// or "" after a successful one.
func (b *Bridge) LastError() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// Busy reports whether a turn is currently in flight.
func (b *Bridge) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inFlight
}
