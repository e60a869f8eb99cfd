package assistant

import (
	"fmt"

	"github.com/brayanj4y/code-assist/internal/project"
)

// systemPrompt fixes the assistant persona and the markdown fencing the
// extractor depends on.
const systemPrompt = `You are a helpful coding assistant that specializes in HTML, CSS, and JavaScript.
When providing code, always wrap it in markdown code blocks with the appropriate language tag.
If you're suggesting changes to the user's code, clearly indicate which parts should be modified
and provide the complete updated code. Be concise but thorough in your explanations.`

// buildContext fences the current buffers by language tag so the model
// sees the full project state.
func buildContext(b project.SourceBundle) string {
	return fmt.Sprintf("HTML Code:\n```html\n%s\n```\n\nCSS Code:\n```css\n%s\n```\n\nJavaScript Code:\n```javascript\n%s\n```\n",
		b.HTML, b.CSS, b.JS)
}
