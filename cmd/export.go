package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/brayanj4y/code-assist/internal/archive"
	"github.com/brayanj4y/code-assist/internal/progress"
	"github.com/brayanj4y/code-assist/internal/project"
)

var (
	exportOut  string
	exportGlob string
)

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export saved projects as zip archives",
	Long: `Exports a saved project as a zip archive containing index.html,
styles.css, script.js, and a project.json manifest. With no name
argument, exports every saved project (optionally filtered by --match).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := project.NewStore(database)

		if err := os.MkdirAll(exportOut, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}

		if len(args) == 1 {
			p, err := store.GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reading project: %w", err)
			}
			if p == nil {
				return fmt.Errorf("project %q not found", args[0])
			}
			path, err := exportOne(*p)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %s\n", path)
			return nil
		}

		projects, err := store.ListProjects(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}
		if exportGlob != "" {
			var matched []project.Project
			for _, p := range projects {
				ok, err := doublestar.Match(exportGlob, p.Name)
				if err != nil {
					return fmt.Errorf("invalid --match pattern: %w", err)
				}
				if ok {
					matched = append(matched, p)
				}
			}
			projects = matched
		}
		if len(projects) == 0 {
			fmt.Println("Nothing to export.")
			return nil
		}

		reporter := progress.NewReporter()
		reporter.Start(len(projects))
		for i, p := range projects {
			path, err := exportOne(p)
			if err != nil {
				reporter.Finish()
				return err
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "wrote %s\n", path)
			}
			reporter.Update(i+1, p.Name)
		}
		reporter.Finish()
		fmt.Printf("Exported %d project(s) to %s\n", len(projects), exportOut)
		return nil
	},
}

// exportOne writes a single project archive into the output directory.
func exportOne(p project.Project) (string, error) {
	path := filepath.Join(exportOut, archive.ArchiveFilename(p.Name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := archive.WriteArchive(f, p.Name, p.SourceBundle); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "output directory for archives")
	exportCmd.Flags().StringVar(&exportGlob, "match", "", "glob pattern to filter project names")
	rootCmd.AddCommand(exportCmd)
}
