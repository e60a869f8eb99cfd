package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brayanj4y/code-assist/internal/project"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List and manage saved projects",
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
		projects, err := store.ListProjects(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}

		if len(projects) == 0 {
			fmt.Println("No saved projects.")
			return nil
		}
		for _, p := range projects {
			fmt.Printf("%-30s %s\n", p.Name, p.LastModified.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved project",
	Args:  cobra.ExactArgs(1),
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
		if err := store.DeleteProject(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("deleting project: %w", err)
		}
		fmt.Printf("Deleted %q\n", args[0])
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}
