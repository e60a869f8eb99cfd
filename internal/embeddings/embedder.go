package embeddings

import (
	"context"

	chromem "github.com/philippgille/chromem-go"
)

// Embedder generates a vector embedding for a single text. Project search
// only ever embeds one document or query at a time.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)

	// Name returns the name/identifier of the embedding model.
	Name() string
}

// ToChromemFunc converts an Embedder into a chromem.EmbeddingFunc.
func ToChromemFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return e.Embed(ctx, text)
	}
}
