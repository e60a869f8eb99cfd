package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brayanj4y/code-assist/internal/config"
	"github.com/brayanj4y/code-assist/internal/db"
	"github.com/brayanj4y/code-assist/internal/embeddings"
	"github.com/brayanj4y/code-assist/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `codeassist init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openDatabase opens the sqlite database under the configured data
// directory, creating the directory if needed.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return db.Open(filepath.Join(cfg.DataDir, "codeassist.db"))
}

// createLLMProviderFromConfig creates the configured LLM provider,
// wrapped with the request timeout and rate limit decorators.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	if cfg.RequestTimeoutSec > 0 {
		provider = llm.WithTimeout(provider, time.Duration(cfg.RequestTimeoutSec)*time.Second)
	}
	if cfg.RequestsPerMinute > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.RequestsPerMinute)
	}
	return provider, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
// Returns nil without error when no embedding provider is configured;
// semantic project search is then disabled.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		return nil, nil
	}
	model := cfg.EmbeddingModel
	if model == "" {
		model = config.GetPreset(provider, cfg.Quality).EmbeddingModel
	}

	switch provider {
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(model, ""), nil
	default:
		// Gemini has no embedding support here; OpenAI embeddings are
		// the fallback for all cloud providers.
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for %s embeddings", provider)
		}
		return embeddings.NewOpenAIEmbedder(apiKey, model), nil
	}
}
