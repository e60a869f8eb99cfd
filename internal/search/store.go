package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/brayanj4y/code-assist/internal/embeddings"
	"github.com/brayanj4y/code-assist/internal/project"
)

const collectionName = "projects"

// Result is one catalog hit for a semantic query.
type Result struct {
	Name         string    `json:"name"`
	Similarity   float32   `json:"similarity"`
	LastModified time.Time `json:"lastModified"`
}

// Store keeps an in-memory embedding index over the saved-project
// catalog. It mirrors catalog writes and answers fuzzy name-and-content
// queries; the sqlite catalog stays the source of truth.
type Store struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewStore creates an empty index backed by the given embedder.
func NewStore(embedder embeddings.Embedder) (*Store, error) {
	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(collectionName, nil, embeddings.ToChromemFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &Store{db: db, collection: col}, nil
}

// Index adds or replaces the entry for a saved project.
func (s *Store) Index(ctx context.Context, p project.Project) error {
	doc := chromem.Document{
		ID:      p.Name,
		Content: documentText(p),
		Metadata: map[string]string{
			"name":          p.Name,
			"last_modified": p.LastModified.Format(time.RFC3339),
		},
	}
	if err := s.collection.AddDocuments(ctx, []chromem.Document{doc}, 1); err != nil {
		return fmt.Errorf("indexing %q: %w", p.Name, err)
	}
	return nil
}

// Remove drops the entry for a deleted project. Unknown names are a
// no-op.
func (s *Store) Remove(ctx context.Context, name string) error {
	if s.collection.Count() == 0 {
		return nil
	}
	return s.collection.Delete(ctx, nil, nil, name)
}

// Query returns up to limit catalog entries ranked by similarity.
func (s *Store) Query(ctx context.Context, q string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	hits, err := s.collection.Query(ctx, q, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}

	results := make([]Result, len(hits))
	for i, h := range hits {
		lastModified, _ := time.Parse(time.RFC3339, h.Metadata["last_modified"])
		results[i] = Result{
			Name:         h.Metadata["name"],
			Similarity:   h.Similarity,
			LastModified: lastModified,
		}
	}
	return results, nil
}

// Count reports the number of indexed projects.
func (s *Store) Count() int {
	return s.collection.Count()
}

// documentText flattens a project into one embeddable string. The name
// leads so that name queries score well even for near-empty projects.
func documentText(p project.Project) string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString("\n\n")
	b.WriteString(p.HTML)
	b.WriteString("\n\n")
	b.WriteString(p.CSS)
	b.WriteString("\n\n")
	b.WriteString(p.JS)
	return b.String()
}
