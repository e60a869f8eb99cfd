package project

import (
	"context"
	"testing"
	"time"

	"github.com/brayanj4y/code-assist/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestLoadSessionDefaults(t *testing.T) {
	store := setupTestStore(t)

	sess := store.Session()
	if sess.ProjectName != DefaultProjectName {
		t.Errorf("expected %q, got %q", DefaultProjectName, sess.ProjectName)
	}
	if sess.Sources != DefaultBundle() {
		t.Error("expected default bundle")
	}
	if sess.ActiveFile != FileHTML {
		t.Errorf("expected html active, got %s", sess.ActiveFile)
	}
}

func TestLoadSessionMalformedRecord(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	if err := database.SetSetting("current_session", "{not json"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}

	store := NewStore(database)
	sess := store.Session()
	if sess.ProjectName != DefaultProjectName {
		t.Errorf("corrupt record should fall back to defaults, got %q", sess.ProjectName)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	store := NewStore(database)
	store.UpdateBuffer(FileHTML, "<p>hi</p>")
	store.SetActiveFile(FileCSS)
	store.Flush()

	reloaded := NewStore(database)
	sess := reloaded.Session()
	if sess.Sources.HTML != "<p>hi</p>" {
		t.Errorf("expected persisted html, got %q", sess.Sources.HTML)
	}
	if sess.ActiveFile != FileCSS {
		t.Errorf("expected css active after reload, got %s", sess.ActiveFile)
	}
}

func TestPersistSkipsHalfInitializedSession(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	store := NewStore(database)
	store.ReplaceSession("Partial", SourceBundle{HTML: "<p>only html</p>"})
	store.Flush()

	raw, _ := database.GetSetting("current_session")
	if raw != "" {
		t.Errorf("session with empty buffers must not be persisted, got %q", raw)
	}
}

func TestSaveAndLoadProject(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	start := time.Now().UTC()
	store.ReplaceSession("scratch", SourceBundle{HTML: "<p>hi</p>", CSS: "p{}", JS: "1"})

	saved, err := store.SaveProject(ctx, "Demo")
	if err != nil {
		t.Fatalf("SaveProject: %v", err)
	}
	if saved.Name != "Demo" {
		t.Errorf("expected name Demo, got %q", saved.Name)
	}
	if saved.LastModified.Before(start) {
		t.Error("lastModified should not predate the save call")
	}

	projects, err := store.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].HTML != "<p>hi</p>" {
		t.Errorf("unexpected html: %q", projects[0].HTML)
	}

	store.ResetToDefault()
	store.LoadProject(projects[0])

	sess := store.Session()
	if sess.ProjectName != "Demo" || sess.Sources.HTML != "<p>hi</p>" {
		t.Error("LoadProject did not restore the saved bundle")
	}
}

func TestSaveProjectEmptyName(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.SaveProject(context.Background(), "   "); err != ErrEmptyName {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestSaveTwiceOverwritesInPlace(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		if _, err := store.SaveProject(ctx, name); err != nil {
			t.Fatalf("SaveProject(%s): %v", name, err)
		}
	}

	store.UpdateBuffer(FileHTML, "<h1>v2</h1>")
	if _, err := store.SaveProject(ctx, "Beta"); err != nil {
		t.Fatalf("re-save Beta: %v", err)
	}

	projects, _ := store.ListProjects(ctx)
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects after overwrite, got %d", len(projects))
	}

	order := []string{projects[0].Name, projects[1].Name, projects[2].Name}
	want := []string{"Alpha", "Beta", "Gamma"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("catalog order changed: got %v, want %v", order, want)
		}
	}
	if projects[1].HTML != "<h1>v2</h1>" {
		t.Errorf("overwrite did not update content: %q", projects[1].HTML)
	}
}

func TestDeleteProjectAbsentIsNoOp(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	store.SaveProject(ctx, "Keeper")

	if err := store.DeleteProject(ctx, "nope"); err != nil {
		t.Fatalf("deleting an absent project should not error: %v", err)
	}

	projects, _ := store.ListProjects(ctx)
	if len(projects) != 1 {
		t.Errorf("catalog changed by no-op delete: %d entries", len(projects))
	}

	if err := store.DeleteProject(ctx, "Keeper"); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	projects, _ = store.ListProjects(ctx)
	if len(projects) != 0 {
		t.Errorf("expected empty catalog, got %d", len(projects))
	}
}

func TestLoadProjectKeepsActiveFile(t *testing.T) {
	store := setupTestStore(t)

	store.SetActiveFile(FileJS)
	store.LoadProject(Project{Name: "Other", SourceBundle: SourceBundle{HTML: "x", CSS: "y", JS: "z"}})

	if got := store.Session().ActiveFile; got != FileJS {
		t.Errorf("LoadProject must not change active file, got %s", got)
	}
}

func TestSubscribeFiresOnChanges(t *testing.T) {
	store := setupTestStore(t)

	var got []string
	store.Subscribe(func(b SourceBundle) { got = append(got, b.HTML) })

	store.UpdateBuffer(FileHTML, "a")
	store.UpdateBuffer(FileHTML, "b")
	store.ResetToDefault()

	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected notification order: %v", got)
	}
}
