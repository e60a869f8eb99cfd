package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "codeassist",
	Short: "Local web playground with an AI coding assistant",
	Long: `Code Assist runs a local HTML/CSS/JavaScript playground in your
browser: three editable buffers, a sandboxed live preview, a project
catalog, and an AI assistant that reads your code and suggests
changes you can apply with one click.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".codeassist.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
