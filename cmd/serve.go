package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brayanj4y/code-assist/internal/archive"
	"github.com/brayanj4y/code-assist/internal/assistant"
	"github.com/brayanj4y/code-assist/internal/config"
	"github.com/brayanj4y/code-assist/internal/preview"
	"github.com/brayanj4y/code-assist/internal/project"
	"github.com/brayanj4y/code-assist/internal/search"
	"github.com/brayanj4y/code-assist/internal/server"
)

var (
	servePort int
	serveHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the playground editor server",
	Long:  `Starts the local editor server: three-buffer editor, sandboxed live preview, project catalog, and the AI assistant chat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}
		if serveHost != "" {
			cfg.Host = serveHost
		}

		// Open database.
		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		// Project store and the debounced preview renderer.
		store := project.NewStore(database)
		renderer := preview.NewRenderer(func() project.SourceBundle {
			return store.Session().Sources
		})
		store.Subscribe(func(project.SourceBundle) {
			renderer.Trigger()
		})

		// LLM provider and the assistant bridge.
		llmProvider, err := createLLMProviderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}
		bridge := assistant.NewBridge(llmProvider, cfg.Model, store)

		// Optional semantic project search.
		searchStore, err := buildSearchIndex(cmd.Context(), cfg, store)
		if err != nil {
			return err
		}

		// Create the server and register all feature routes.
		srv := server.New(server.Config{
			Host:     cfg.Host,
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, database)

		r := srv.Router()
		project.RegisterRoutes(r, store)
		preview.RegisterRoutes(r, renderer)
		assistant.RegisterRoutes(r, bridge, store)
		archive.RegisterRoutes(r, store)
		search.RegisterRoutes(r, searchStore)

		// Render the session once so the preview is ready on first load.
		renderer.Refresh()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "codeassist v%s\n", Version)
		fmt.Fprintf(os.Stderr, "  Editor:   http://%s\n", srv.Addr())
		fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", cfg.Provider, cfg.Model)
		if verbose {
			fmt.Fprintf(os.Stderr, "  Data:     %s\n", cfg.DataDir)
		}
		if searchStore != nil {
			fmt.Fprintf(os.Stderr, "  Search:   %d projects indexed\n", searchStore.Count())
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		// On signal, stop the server and commit any pending session
		// edits before RunE returns; the debounce window must not be
		// lost to process exit.
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownAndFlush(srv, store)
			if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		}
		return nil
	},
}

// shutdownAndFlush stops the server, then synchronously commits any
// session edits still waiting in the debounce window.
func shutdownAndFlush(srv *server.Server, store *project.Store) {
	srv.Shutdown(context.Background())
	store.Flush()
}

// buildSearchIndex wires the embedding index to the project catalog: it
// seeds the index from saved projects and mirrors future saves and
// deletes. Returns nil when no embedding provider is configured.
func buildSearchIndex(ctx context.Context, cfg *config.Config, store *project.Store) (*search.Store, error) {
	embedder, err := createEmbedderFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}
	if embedder == nil {
		return nil, nil
	}

	searchStore, err := search.NewStore(embedder)
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}

	projects, err := store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	for _, p := range projects {
		if err := searchStore.Index(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not index %q: %v\n", p.Name, err)
		}
	}

	store.SubscribeCatalog(func(name string, p *project.Project) {
		if p == nil {
			if err := searchStore.Remove(context.Background(), name); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not unindex %q: %v\n", name, err)
			}
			return
		}
		if err := searchStore.Index(context.Background(), *p); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not index %q: %v\n", name, err)
		}
	})

	return searchStore, nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
