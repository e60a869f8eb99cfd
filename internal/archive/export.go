package archive

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/brayanj4y/code-assist/internal/project"
)

// Member names inside an exported archive. Importing tools rely on the
// project.json manifest; the three source files are there so the archive
// unpacks into a directly servable page.
const (
	memberHTML     = "index.html"
	memberCSS      = "styles.css"
	memberJS       = "script.js"
	memberManifest = "project.json"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ArchiveFilename derives a download filename from a project name:
// lowercased, whitespace runs collapsed to hyphens, ".zip" suffix.
func ArchiveFilename(name string) string {
	slug := whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	if slug == "" {
		slug = "project"
	}
	return slug + ".zip"
}

// manifest is the portable form of a project bundle. All three source
// fields are required on import.
type manifest struct {
	Name string `json:"name"`
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// WriteArchive streams a zip archive of the named bundle to w.
func WriteArchive(w io.Writer, name string, b project.SourceBundle) error {
	zw := zip.NewWriter(w)

	members := []struct {
		name string
		body []byte
	}{
		{memberHTML, []byte(b.HTML)},
		{memberCSS, []byte(b.CSS)},
		{memberJS, []byte(b.JS)},
	}
	for _, m := range members {
		f, err := zw.Create(m.name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", m.name, err)
		}
		if _, err := f.Write(m.body); err != nil {
			return fmt.Errorf("writing %s: %w", m.name, err)
		}
	}

	meta, err := json.MarshalIndent(manifest{Name: name, HTML: b.HTML, CSS: b.CSS, JS: b.JS}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	f, err := zw.Create(memberManifest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", memberManifest, err)
	}
	if _, err := f.Write(meta); err != nil {
		return fmt.Errorf("writing %s: %w", memberManifest, err)
	}

	return zw.Close()
}
