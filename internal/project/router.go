package project

// Language tags understood by the editor widget.
const (
	LangHTML       = "html"
	LangCSS        = "css"
	LangJavaScript = "javascript"
)

// CurrentBuffer returns the buffer matching the session's active file.
// An unrecognized id yields "" as a defensive default.
func (s ActiveSession) CurrentBuffer() string {
	return s.Sources.Get(s.ActiveFile)
}

// CurrentLanguage maps the active file id to its editor language tag.
// Unrecognized ids default to html.
func (s ActiveSession) CurrentLanguage() string {
	switch s.ActiveFile {
	case FileCSS:
		return LangCSS
	case FileJS:
		return LangJavaScript
	default:
		return LangHTML
	}
}

// SetBuffer writes text into the slot matching the session's active file,
// leaving the other two buffers untouched.
func (s *ActiveSession) SetBuffer(text string) {
	s.Sources.Set(s.ActiveFile, text)
}
