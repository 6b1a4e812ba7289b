package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var programmeCmd = &cobra.Command{
	Use:   "programme",
	Short: "Show or edit the programme details",
}

var programmeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current programme details",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		p := app.State().Programme
		fmt.Printf("Programme title: %s\n", orUnset(p.ProgrammeTitle))
		fmt.Printf("Award level:     %s\n", orUnset(p.AwardLevel))
		fmt.Printf("Department:      %s\n", orUnset(p.Department))
		fmt.Printf("Institution:     %s\n", orUnset(p.Institution))
		fmt.Printf("Mapping date:    %s\n", orUnset(p.MappingDate))
		fmt.Printf("Version:         %s\n", orUnset(p.Version))
	},
}

var programmeSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update programme details",
	Long:  `Updates only the fields whose flags are given; everything else is left as is.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		p := app.State().Programme

		for flag, field := range map[string]*string{
			"title":       &p.ProgrammeTitle,
			"award":       &p.AwardLevel,
			"department":  &p.Department,
			"institution": &p.Institution,
			"date":        &p.MappingDate,
			"version":     &p.Version,
		} {
			if cmd.Flags().Changed(flag) {
				*field, _ = cmd.Flags().GetString(flag)
			}
		}

		if err := app.SetProgramme(cmd.Context(), p); err != nil {
			fmt.Printf("Error saving programme details: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Programme details updated.")
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	programmeSetCmd.Flags().String("title", "", "Programme title")
	programmeSetCmd.Flags().String("award", "", "Award level (e.g. BSc, MSc)")
	programmeSetCmd.Flags().String("department", "", "Department or school")
	programmeSetCmd.Flags().String("institution", "", "Institution")
	programmeSetCmd.Flags().String("date", "", "Mapping date (YYYY-MM-DD)")
	programmeSetCmd.Flags().String("version", "", "Mapping version label")

	rootCmd.AddCommand(programmeCmd)
	programmeCmd.AddCommand(programmeShowCmd)
	programmeCmd.AddCommand(programmeSetCmd)
}
