package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the workspace to a blank mapping",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(os.Stdin, "This discards the whole mapping. Continue?") {
			fmt.Println("Clear cancelled.")
			return
		}

		if err := app.Reset(cmd.Context()); err != nil {
			fmt.Printf("Error resetting workspace: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Workspace reset to a blank mapping.")
	},
}

func init() {
	clearCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}
