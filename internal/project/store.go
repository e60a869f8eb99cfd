package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/brayanj4y/code-assist/internal/db"
)

// Settings keys used in the durable store.
const (
	keyCurrentSession = "current_session"
	keyActiveFile     = "active_file"
)

// ErrEmptyName is returned by SaveProject when the trimmed name is empty.
var ErrEmptyName = errors.New("project name is empty")

// Store owns the active session and the saved-project catalog. It is the
// only writer to the project-related keys of the durable store.
type Store struct {
	db     *db.DB
	commit *committer

	mu      sync.Mutex
	session ActiveSession

	sourceSubs  []func(SourceBundle)
	catalogSubs []func(name string, p *Project)
}

// NewStore creates a Store and loads the session from durable storage,
// falling back to the built-in defaults when the stored record is absent
// or malformed.
func NewStore(database *db.DB) *Store {
	s := &Store{db: database}
	s.commit = newCommitter(defaultCommitInterval, s.persistSession)
	s.session = s.loadSession()
	return s
}

func (s *Store) loadSession() ActiveSession {
	sess := ActiveSession{
		ProjectName: DefaultProjectName,
		Sources:     DefaultBundle(),
		ActiveFile:  FileHTML,
	}

	raw, err := s.db.GetSetting(keyCurrentSession)
	if err != nil {
		log.Printf("project: reading session record: %v", err)
	}
	if raw != "" {
		var p Project
		if err := json.Unmarshal([]byte(raw), &p); err != nil || p.Name == "" {
			log.Printf("project: malformed session record, starting from defaults")
		} else {
			sess.ProjectName = p.Name
			sess.Sources = p.SourceBundle
		}
	}

	if v, err := s.db.GetSetting(keyActiveFile); err == nil && ValidFile(FileID(v)) {
		sess.ActiveFile = FileID(v)
	}

	return sess
}

// Session returns a copy of the active session.
func (s *Store) Session() ActiveSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Subscribe registers fn to run after every change to the source bundle.
// Must be called before the store is used concurrently.
func (s *Store) Subscribe(fn func(SourceBundle)) {
	s.sourceSubs = append(s.sourceSubs, fn)
}

// SubscribeCatalog registers fn to run after a project is saved (p non-nil)
// or deleted (p nil). Must be called before the store is used concurrently.
func (s *Store) SubscribeCatalog(fn func(name string, p *Project)) {
	s.catalogSubs = append(s.catalogSubs, fn)
}

func (s *Store) notifySources(b SourceBundle) {
	for _, fn := range s.sourceSubs {
		fn(b)
	}
}

func (s *Store) notifyCatalog(name string, p *Project) {
	for _, fn := range s.catalogSubs {
		fn(name, p)
	}
}

// UpdateBuffer replaces the buffer for the given file id and schedules a
// debounced mirror of the session to durable storage.
func (s *Store) UpdateBuffer(id FileID, text string) {
	if !ValidFile(id) {
		return
	}
	s.mu.Lock()
	s.session.Sources.Set(id, text)
	bundle := s.session.Sources
	s.mu.Unlock()

	s.commit.Schedule()
	s.notifySources(bundle)
}

// SetActiveFile updates the selected file and mirrors it to durable storage
// under its own key, independent of the session record.
func (s *Store) SetActiveFile(id FileID) {
	if !ValidFile(id) {
		return
	}
	s.mu.Lock()
	s.session.ActiveFile = id
	s.mu.Unlock()

	if err := s.db.SetSetting(keyActiveFile, string(id)); err != nil {
		log.Printf("project: persisting active file: %v", err)
	}
}

// persistSession mirrors the session to durable storage. The write is
// skipped while any buffer is still empty so a half-initialized session
// never clobbers the stored record during startup.
func (s *Store) persistSession() {
	s.mu.Lock()
	snap := Project{
		Name:         s.session.ProjectName,
		SourceBundle: s.session.Sources,
		LastModified: time.Now().UTC(),
	}
	s.mu.Unlock()

	if snap.HTML == "" || snap.CSS == "" || snap.JS == "" {
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("project: encoding session record: %v", err)
		return
	}
	if err := s.db.SetSetting(keyCurrentSession, string(data)); err != nil {
		log.Printf("project: persisting session: %v", err)
	}
}

// Flush cancels any pending debounced commit and mirrors the session now.
func (s *Store) Flush() {
	s.commit.Flush()
}

// SaveProject snapshots the active session under the given name. An
// existing catalog entry with the same name is overwritten in place,
// preserving its position; a new name is appended at the end. The snapshot
// is also written as the current session record.
func (s *Store) SaveProject(ctx context.Context, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	s.session.ProjectName = name
	snap := Project{
		Name:         name,
		SourceBundle: s.session.Sources,
		LastModified: time.Now().UTC(),
	}
	s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET html = ?, css = ?, js = ?, last_modified = ? WHERE name = ?`,
		snap.HTML, snap.CSS, snap.JS, snap.LastModified, snap.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO projects (name, html, css, js, position, last_modified)
			 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM projects), ?)`,
			snap.Name, snap.HTML, snap.CSS, snap.JS, snap.LastModified,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting project: %w", err)
		}
	}

	data, err := json.Marshal(snap)
	if err == nil {
		if err := s.db.SetSetting(keyCurrentSession, string(data)); err != nil {
			log.Printf("project: persisting session record: %v", err)
		}
	}

	s.notifyCatalog(snap.Name, &snap)
	return &snap, nil
}

// ListProjects returns the catalog in insertion order.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, html, css, js, last_modified FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.Name, &p.HTML, &p.CSS, &p.JS, &p.LastModified); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject returns the catalog entry with the given name, or nil if
// there is none.
func (s *Store) GetProject(ctx context.Context, name string) (*Project, error) {
	var p Project
	err := s.db.QueryRowContext(ctx,
		`SELECT name, html, css, js, last_modified FROM projects WHERE name = ?`, name,
	).Scan(&p.Name, &p.HTML, &p.CSS, &p.JS, &p.LastModified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return &p, nil
}

// LoadProject overwrites the session's name and sources from the given
// project. The active file selection is left unchanged.
func (s *Store) LoadProject(p Project) {
	s.mu.Lock()
	s.session.ProjectName = p.Name
	s.session.Sources = p.SourceBundle
	bundle := s.session.Sources
	s.mu.Unlock()

	s.commit.Schedule()
	s.notifySources(bundle)
}

// DeleteProject removes the catalog entry with the given name. Deleting a
// name that is not in the catalog is a no-op.
func (s *Store) DeleteProject(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	s.notifyCatalog(name, nil)
	return nil
}

// ResetToDefault starts a fresh untitled session from the built-in bundle.
func (s *Store) ResetToDefault() {
	s.mu.Lock()
	s.session.ProjectName = DefaultProjectName
	s.session.Sources = DefaultBundle()
	bundle := s.session.Sources
	s.mu.Unlock()

	s.commit.Schedule()
	s.notifySources(bundle)
}

// ReplaceSession overwrites the session's name and all three buffers at
// once, used by project-file import.
func (s *Store) ReplaceSession(name string, b SourceBundle) {
	s.mu.Lock()
	s.session.ProjectName = name
	s.session.Sources = b
	s.mu.Unlock()

	s.commit.Schedule()
	s.notifySources(b)
}
