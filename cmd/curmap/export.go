package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"curmap/pkg/domain"
)

var exportCmd = &cobra.Command{
	Use:       "export {json|markdown}",
	Short:     "Export the mapping as a JSON document or Markdown report",
	Long:      `Writes <slug-of-title>-<mapping-date>.json or .md into the output directory.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "markdown"},
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		outDir, _ := cmd.Flags().GetString("out")

		var path string
		var err error
		switch args[0] {
		case "json":
			path, err = app.ExportJSON(cmd.Context(), outDir)
		case "markdown", "md":
			path, err = app.ExportMarkdown(cmd.Context(), outDir)
		default:
			fmt.Printf("Unknown export format %q (want json or markdown)\n", args[0])
			os.Exit(1)
		}

		if err != nil {
			if errors.Is(err, domain.ErrNothingTagged) {
				fmt.Println("No domain tags set yet; tag at least one item before exporting.")
				os.Exit(1)
			}
			fmt.Printf("Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %s\n", path)
	},
}

func init() {
	exportCmd.Flags().String("out", ".", "Directory to write the export file into")
	rootCmd.AddCommand(exportCmd)
}
