package project

import "testing"

func TestCurrentBufferAndLanguage(t *testing.T) {
	sess := ActiveSession{
		Sources: SourceBundle{HTML: "<p></p>", CSS: "p{}", JS: "x()"},
	}

	cases := []struct {
		file FileID
		buf  string
		lang string
	}{
		{FileHTML, "<p></p>", "html"},
		{FileCSS, "p{}", "css"},
		{FileJS, "x()", "javascript"},
	}
	for _, tc := range cases {
		sess.ActiveFile = tc.file
		if got := sess.CurrentBuffer(); got != tc.buf {
			t.Errorf("%s: buffer = %q, want %q", tc.file, got, tc.buf)
		}
		if got := sess.CurrentLanguage(); got != tc.lang {
			t.Errorf("%s: language = %q, want %q", tc.file, got, tc.lang)
		}
	}
}

func TestUnknownFileDefaults(t *testing.T) {
	sess := ActiveSession{
		Sources:    SourceBundle{HTML: "h"},
		ActiveFile: FileID("markdown"),
	}

	if got := sess.CurrentBuffer(); got != "" {
		t.Errorf("unknown id should yield empty buffer, got %q", got)
	}
	if got := sess.CurrentLanguage(); got != "html" {
		t.Errorf("unknown id should default to html, got %q", got)
	}
}

func TestSetBufferTouchesOnlyActiveSlot(t *testing.T) {
	sess := ActiveSession{
		Sources:    SourceBundle{HTML: "h", CSS: "c", JS: "j"},
		ActiveFile: FileCSS,
	}

	sess.SetBuffer("body{margin:0}")

	if sess.Sources.CSS != "body{margin:0}" {
		t.Errorf("css not updated: %q", sess.Sources.CSS)
	}
	if sess.Sources.HTML != "h" || sess.Sources.JS != "j" {
		t.Error("other buffers must be untouched")
	}
}
