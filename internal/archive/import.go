package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/brayanj4y/code-assist/internal/project"
)

const maxImportSize = 8 << 20

// ImportedProjectName is used when an imported file carries no name of
// its own.
const ImportedProjectName = "Imported Project"

var ErrUnsupportedFile = errors.New("unsupported file type")

// Importer applies imported content to the live session.
type Importer interface {
	UpdateBuffer(id project.FileID, text string)
	SetActiveFile(id project.FileID)
	ReplaceSession(name string, b project.SourceBundle)
}

// ImportFile routes an uploaded file by extension. A source file
// replaces the matching buffer and focuses it; a .json manifest or .zip
// archive replaces the whole session. A malformed manifest is rejected
// before any buffer is touched.
func ImportFile(store Importer, filename string, r io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(r, maxImportSize+1))
	if err != nil {
		return fmt.Errorf("reading upload: %w", err)
	}
	if len(data) > maxImportSize {
		return fmt.Errorf("file exceeds %d byte limit", maxImportSize)
	}

	switch strings.ToLower(path.Ext(filename)) {
	case ".html", ".htm":
		store.UpdateBuffer(project.FileHTML, string(data))
		store.SetActiveFile(project.FileHTML)
	case ".css":
		store.UpdateBuffer(project.FileCSS, string(data))
		store.SetActiveFile(project.FileCSS)
	case ".js":
		store.UpdateBuffer(project.FileJS, string(data))
		store.SetActiveFile(project.FileJS)
	case ".json":
		return importManifest(store, data)
	case ".zip":
		return importArchive(store, data)
	default:
		return ErrUnsupportedFile
	}
	return nil
}

// importManifest replaces the session from a project.json manifest. All
// three source fields must be present as strings.
func importManifest(store Importer, data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing project file: %w", err)
	}

	var bundle project.SourceBundle
	fields := []struct {
		key  string
		dest *string
	}{
		{"html", &bundle.HTML},
		{"css", &bundle.CSS},
		{"js", &bundle.JS},
	}
	for _, f := range fields {
		msg, ok := raw[f.key]
		if !ok {
			return fmt.Errorf("project file missing %q field", f.key)
		}
		if err := json.Unmarshal(msg, f.dest); err != nil {
			return fmt.Errorf("project file %q field must be a string", f.key)
		}
	}

	name := ImportedProjectName
	if msg, ok := raw["name"]; ok {
		var s string
		if err := json.Unmarshal(msg, &s); err == nil && strings.TrimSpace(s) != "" {
			name = s
		}
	}

	store.ReplaceSession(name, bundle)
	return nil
}

// importArchive replaces the session from an exported zip. The
// project.json manifest is authoritative when present; otherwise the
// three well-known members are read directly.
func importArchive(store Importer, data []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}

	members := make(map[string][]byte)
	for _, f := range zr.File {
		switch f.Name {
		case memberHTML, memberCSS, memberJS, memberManifest:
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("opening %s: %w", f.Name, err)
			}
			body, err := io.ReadAll(io.LimitReader(rc, maxImportSize))
			rc.Close()
			if err != nil {
				return fmt.Errorf("reading %s: %w", f.Name, err)
			}
			members[f.Name] = body
		}
	}

	if meta, ok := members[memberManifest]; ok {
		return importManifest(store, meta)
	}
	if len(members) == 0 {
		return errors.New("archive has no recognizable members")
	}

	store.ReplaceSession(ImportedProjectName, project.SourceBundle{
		HTML: string(members[memberHTML]),
		CSS:  string(members[memberCSS]),
		JS:   string(members[memberJS]),
	})
	return nil
}
