package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"curmap"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of curmap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("curmap version %s\n", curmap.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
