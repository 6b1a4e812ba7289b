package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"curmap"
	"curmap/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "curmap",
	Short: "curmap maps curriculum items against six AI-literacy domains",
	Long: `curmap records a programme's modules, activities and assessments, tags each
against six fixed AI-literacy domains, and exports the result as a Markdown
report or a JSON document. All data stays in the local workspace.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Workspace directory holding the .curmap state")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// openApp builds the App for the workspace selected by the persistent flags.
func openApp(cmd *cobra.Command) *curmap.App {
	dir, _ := cmd.Flags().GetString("dir")
	debug, _ := cmd.Flags().GetBool("debug")

	logger := logging.NewNop()
	if debug {
		logger = logging.New(slog.LevelDebug)
	}

	app, err := curmap.Open(dir, curmap.WithLogger(logger))
	if err != nil {
		fmt.Printf("Error opening workspace: %v\n", err)
		os.Exit(1)
	}
	return app
}
