package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the workspace with a previously exported JSON mapping",
	Long: `Reads a curmap JSON export (or any {programme, items} document) and replaces
the entire workspace state with it. The replacement is all-or-nothing: on any
error the current state is left untouched.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)

		raw, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading '%s': %v\n", args[0], err)
			os.Exit(1)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(os.Stdin, "This replaces the current mapping entirely. Continue?") {
			fmt.Println("Import cancelled.")
			return
		}

		if err := app.Import(cmd.Context(), raw); err != nil {
			fmt.Printf("Import failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d item(s) from %s\n", len(app.State().Items), args[0])
	},
}

func init() {
	importCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)
}
