package project

import "time"

// FileID identifies one of the three editable buffers.
type FileID string

const (
	FileHTML FileID = "html"
	FileCSS  FileID = "css"
	FileJS   FileID = "js"
)

// ValidFile reports whether id is one of the three known file ids.
func ValidFile(id FileID) bool {
	return id == FileHTML || id == FileCSS || id == FileJS
}

// SourceBundle holds the three mutually independent source buffers of a
// project. Buffers may be empty; no cross-validation is performed.
type SourceBundle struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// Get returns the buffer for the given file id, or "" for an unknown id.
func (b SourceBundle) Get(id FileID) string {
	switch id {
	case FileHTML:
		return b.HTML
	case FileCSS:
		return b.CSS
	case FileJS:
		return b.JS
	default:
		return ""
	}
}

// Set writes text into the buffer for the given file id, leaving the other
// two buffers untouched. Unknown ids are ignored.
func (b *SourceBundle) Set(id FileID, text string) {
	switch id {
	case FileHTML:
		b.HTML = text
	case FileCSS:
		b.CSS = text
	case FileJS:
		b.JS = text
	}
}

// Project is a named, persisted snapshot of a SourceBundle. The JSON shape
// is flat (name/html/css/js/lastModified), matching the exported
// project.json format.
type Project struct {
	Name string `json:"name"`
	SourceBundle
	LastModified time.Time `json:"lastModified"`
}

// ActiveSession is the in-memory working state of the editor. It is
// mirrored to durable storage on buffer changes and never explicitly
// destroyed, only overwritten by reset or load.
type ActiveSession struct {
	ProjectName string       `json:"name"`
	Sources     SourceBundle `json:"sources"`
	ActiveFile  FileID       `json:"activeFile"`
}
