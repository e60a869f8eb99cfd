package assistant

// Role of a chat participant.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CodeBlocks is the partial source bundle extracted from an assistant
// reply. A nil field means no fenced block of that language was found.
type CodeBlocks struct {
	HTML *string `json:"html,omitempty"`
	CSS  *string `json:"css,omitempty"`
	JS   *string `json:"js,omitempty"`
}

// Empty reports whether no code was extracted at all.
func (c CodeBlocks) Empty() bool {
	return c.HTML == nil && c.CSS == nil && c.JS == nil
}

// ChatMessage is one turn in the assistant conversation. History is
// transient UI state: append-only, never persisted.
type ChatMessage struct {
	ID          string      `json:"id"`
	Role        string      `json:"role"`
	Content     string      `json:"content"`
	ContentHTML string      `json:"contentHtml,omitempty"`
	Code        *CodeBlocks `json:"code,omitempty"`
}
