package assistant

import "regexp"

// Fence patterns for each language tag. Only the first occurrence per tag
// is captured; a reply with two html fences keeps the first and drops the
// second.
var (
	htmlFence = regexp.MustCompile("```html\\n([\\s\\S]*?)```")
	cssFence  = regexp.MustCompile("```css\\n([\\s\\S]*?)```")
	jsFence   = regexp.MustCompile("```javascript\\n([\\s\\S]*?)```")
)

// ExtractCodeBlocks pulls at most one fenced code block per language tag
// out of a markdown reply.
func ExtractCodeBlocks(text string) CodeBlocks {
	var blocks CodeBlocks
	if m := htmlFence.FindStringSubmatch(text); m != nil {
		blocks.HTML = &m[1]
	}
	if m := cssFence.FindStringSubmatch(text); m != nil {
		blocks.CSS = &m[1]
	}
	if m := jsFence.FindStringSubmatch(text); m != nil {
		blocks.JS = &m[1]
	}
	return blocks
}
