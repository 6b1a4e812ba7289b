package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"curmap/pkg/domain"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full Markdown mapping report",
	Long: `Renders the complete report: programme details, domain coverage,
observations, domain lenses and one table per item type. Output is rendered
for the terminal when stdout is a TTY and emitted as plain Markdown when
piped or redirected.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		md, err := app.ReportMarkdown()
		if err != nil {
			if errors.Is(err, domain.ErrNothingTagged) {
				fmt.Println("No domain tags set yet; tag at least one item before building a report.")
				os.Exit(1)
			}
			fmt.Printf("Error building report: %v\n", err)
			os.Exit(1)
		}
		render, _ := cmd.Flags().GetBool("render")
		printMarkdown(md, render)
	},
}

func init() {
	reportCmd.Flags().Bool("render", false, "Force terminal rendering even when piped")
	rootCmd.AddCommand(reportCmd)
}
