package assistant

import "testing"

func TestExtractAllThreeLanguages(t *testing.T) {
	reply := "Here you go:\n\n```html\n<p>hi</p>\n```\n\nAnd styles:\n```css\np { color: red; }\n```\n\nFinally:\n```javascript\nconsole.log('hi');\n```\n"

	blocks := ExtractCodeBlocks(reply)
	if blocks.HTML == nil || *blocks.HTML != "<p>hi</p>\n" {
		t.Errorf("html block = %v", blocks.HTML)
	}
	if blocks.CSS == nil || *blocks.CSS != "p { color: red; }\n" {
		t.Errorf("css block = %v", blocks.CSS)
	}
	if blocks.JS == nil || *blocks.JS != "console.log('hi');\n" {
		t.Errorf("js block = %v", blocks.JS)
	}
}

func TestExtractNoFences(t *testing.T) {
	blocks := ExtractCodeBlocks("Just prose, no code at all.")
	if !blocks.Empty() {
		t.Errorf("expected empty extraction, got %+v", blocks)
	}
}

func TestExtractFirstMatchOnly(t *testing.T) {
	reply := "```html\n<p>first</p>\n```\nand then\n```html\n<p>second</p>\n```\n"

	blocks := ExtractCodeBlocks(reply)
	if blocks.HTML == nil || *blocks.HTML != "<p>first</p>\n" {
		t.Errorf("expected first fence only, got %v", blocks.HTML)
	}
}

func TestExtractIgnoresOtherLanguages(t *testing.T) {
	blocks := ExtractCodeBlocks("```python\nprint('hi')\n```\n")
	if !blocks.Empty() {
		t.Errorf("expected empty extraction for unrelated fences, got %+v", blocks)
	}
}
