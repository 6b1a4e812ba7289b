package main

import (
	"github.com/spf13/cobra"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Show the domain coverage table and observations",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		render, _ := cmd.Flags().GetBool("render")
		printMarkdown(app.CoverageMarkdown(), render)
	},
}

func init() {
	coverageCmd.Flags().Bool("render", false, "Force terminal rendering even when piped")
	rootCmd.AddCommand(coverageCmd)
}
