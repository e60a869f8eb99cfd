package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/brayanj4y/code-assist/internal/project"
)

// fakeSession records import operations without a database.
type fakeSession struct {
	name    string
	bundle  project.SourceBundle
	active  project.FileID
	touched bool
}

func (f *fakeSession) UpdateBuffer(id project.FileID, text string) {
	f.bundle.Set(id, text)
	f.touched = true
}

func (f *fakeSession) SetActiveFile(id project.FileID) {
	f.active = id
}

func (f *fakeSession) ReplaceSession(name string, b project.SourceBundle) {
	f.name = name
	f.bundle = b
	f.touched = true
}

func TestArchiveFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"My Project", "my-project.zip"},
		{"  Spaced   Out  ", "spaced-out.zip"},
		{"plain", "plain.zip"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines.zip"},
		{"", "project.zip"},
	}
	for _, tc := range cases {
		if got := ArchiveFilename(tc.name); got != tc.want {
			t.Errorf("ArchiveFilename(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestWriteArchiveMembers(t *testing.T) {
	bundle := project.SourceBundle{HTML: "<h1>hi</h1>", CSS: "h1{color:red}", JS: "go()"}

	var buf bytes.Buffer
	if err := WriteArchive(&buf, "Demo", bundle); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}

	got := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		body, _ := io.ReadAll(rc)
		rc.Close()
		got[f.Name] = string(body)
	}

	if got["index.html"] != bundle.HTML || got["styles.css"] != bundle.CSS || got["script.js"] != bundle.JS {
		t.Errorf("source members mismatch: %v", got)
	}

	var meta manifest
	if err := json.Unmarshal([]byte(got["project.json"]), &meta); err != nil {
		t.Fatalf("parsing manifest: %v", err)
	}
	if meta.Name != "Demo" || meta.HTML != bundle.HTML || meta.CSS != bundle.CSS || meta.JS != bundle.JS {
		t.Errorf("manifest mismatch: %+v", meta)
	}
	if !strings.Contains(got["project.json"], "\n  ") {
		t.Error("manifest should be indented")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	bundle := project.SourceBundle{HTML: "<p>a</p>", CSS: "p{}", JS: "f()"}

	var buf bytes.Buffer
	if err := WriteArchive(&buf, "Round Trip", bundle); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	sess := &fakeSession{}
	if err := ImportFile(sess, "round-trip.zip", &buf); err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if sess.name != "Round Trip" {
		t.Errorf("name = %q", sess.name)
	}
	if sess.bundle != bundle {
		t.Errorf("bundle = %+v", sess.bundle)
	}
}

func TestImportSingleSourceFile(t *testing.T) {
	sess := &fakeSession{bundle: project.SourceBundle{HTML: "keep", CSS: "keep", JS: "keep"}}

	if err := ImportFile(sess, "theme.CSS", strings.NewReader("body{}")); err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if sess.bundle.CSS != "body{}" {
		t.Errorf("css = %q", sess.bundle.CSS)
	}
	if sess.bundle.HTML != "keep" || sess.bundle.JS != "keep" {
		t.Error("other buffers must be untouched")
	}
	if sess.active != project.FileCSS {
		t.Errorf("active = %q, want css", sess.active)
	}
}

func TestImportManifestNameFallback(t *testing.T) {
	sess := &fakeSession{}
	body := `{"html":"<i>x</i>","css":"","js":""}`

	if err := ImportFile(sess, "export.json", strings.NewReader(body)); err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if sess.name != ImportedProjectName {
		t.Errorf("name = %q, want %q", sess.name, ImportedProjectName)
	}
}

func TestImportManifestRejectsMissingField(t *testing.T) {
	cases := []string{
		`{"html":"a","css":"b"}`,
		`{"html":"a","css":"b","js":7}`,
		`{not json`,
	}
	for _, body := range cases {
		sess := &fakeSession{}
		if err := ImportFile(sess, "bad.json", strings.NewReader(body)); err == nil {
			t.Errorf("expected rejection for %q", body)
		} else if sess.touched {
			t.Errorf("rejected import must not modify buffers: %q", body)
		}
	}
}

func TestImportUnsupportedExtension(t *testing.T) {
	sess := &fakeSession{}
	err := ImportFile(sess, "notes.txt", strings.NewReader("hello"))
	if err != ErrUnsupportedFile {
		t.Errorf("expected ErrUnsupportedFile, got %v", err)
	}
}
