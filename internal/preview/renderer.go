package preview

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brayanj4y/code-assist/internal/project"
)

// State is the renderer lifecycle stage.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// DefaultDebounce is the quiet period before an automatic re-render fires.
const DefaultDebounce = 500 * time.Millisecond

// Snapshot describes the renderer's latest result. Seq increases with every
// render so the UI can disregard a stale result that arrives after a newer
// one (last-render-wins).
type Snapshot struct {
	State      State  `json:"state"`
	Seq        uint64 `json:"seq"`
	FrameToken string `json:"frameToken,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Renderer produces sandboxed preview documents from the current source
// bundle. Renders triggered by edits are debounced; a manual refresh
// renders immediately.
//
// Each successful render registers its document under a random single-use
// frame token. Serving the frame revokes the token, and registering a new
// frame revokes any unconsumed predecessor, so documents never accumulate
// across repeated renders.
type Renderer struct {
	source   func() project.SourceBundle
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	state   State
	lastErr string
	frames  map[string]string
	current string
}

// NewRenderer creates a Renderer that pulls the bundle to render from
// source at the moment a render fires.
func NewRenderer(source func() project.SourceBundle) *Renderer {
	return &Renderer{
		source:   source,
		debounce: DefaultDebounce,
		state:    StateIdle,
		frames:   make(map[string]string),
	}
}

// SetDebounce overrides the debounce window (used in tests).
func (r *Renderer) SetDebounce(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debounce = d
}

// Trigger schedules a debounced render. Changes arriving within the window
// of each other result in a single render of the latest bundle.
func (r *Renderer) Trigger() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = StateLoading
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.debounce, func() { r.Refresh() })
}

// Refresh renders the current bundle immediately, bypassing the debounce,
// and returns the resulting snapshot.
func (r *Renderer) Refresh() Snapshot {
	bundle := r.source()
	doc, err := Synthesize(bundle)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	r.seq++
	if err != nil {
		r.state = StateError
		r.lastErr = err.Error()
		r.revokeCurrentLocked()
		return r.snapshotLocked()
	}

	r.state = StateReady
	r.lastErr = ""
	r.revokeCurrentLocked()

	token := uuid.New().String()
	r.frames[token] = doc
	r.current = token
	return r.snapshotLocked()
}

// Snapshot returns the renderer's latest state without rendering.
func (r *Renderer) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Renderer) snapshotLocked() Snapshot {
	return Snapshot{
		State:      r.state,
		Seq:        r.seq,
		FrameToken: r.current,
		Error:      r.lastErr,
	}
}

// TakeFrame returns the document registered under token and revokes it.
// The second return is false if the token is unknown or already consumed.
func (r *Renderer) TakeFrame(token string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.frames[token]
	if !ok {
		return "", false
	}
	delete(r.frames, token)
	if r.current == token {
		r.current = ""
	}
	return doc, true
}

func (r *Renderer) revokeCurrentLocked() {
	if r.current != "" {
		delete(r.frames, r.current)
		r.current = ""
	}
}
