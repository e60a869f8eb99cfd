package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brayanj4y/code-assist/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize codeassist configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure codeassist and generates a .codeassist.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
