package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"curmap/pkg/domain"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage mapping items (modules, activities, assessments)",
}

var itemLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all mapping items",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		for _, item := range app.State().Items {
			name := item.Name
			if name == "" {
				name = "Untitled"
			}
			tags := "none"
			if active := item.DomainTags.Active(); len(active) > 0 {
				parts := make([]string, len(active))
				for i, k := range active {
					parts[i] = string(k)
				}
				tags = strings.Join(parts, ",")
			}
			fmt.Printf("%s  %-10s  %-30s  %s\n", shortID(item.ID), item.Type, name, tags)
		}
	},
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new mapping item",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		typeStr, _ := cmd.Flags().GetString("type")
		name, _ := cmd.Flags().GetString("name")
		notes, _ := cmd.Flags().GetString("notes")
		tags, _ := cmd.Flags().GetStringSlice("tags")

		item, err := app.AddItem(cmd.Context(), domain.CoerceType(typeStr), name, notes, toKeys(tags))
		if err != nil {
			fmt.Printf("Error adding item: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added %s '%s' (%s)\n", item.Type, displayName(item), shortID(item.ID))
	},
}

var itemEditCmd = &cobra.Command{
	Use:   "edit <item-id>",
	Short: "Edit an item's type, name or notes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		item, err := app.UpdateItem(cmd.Context(), args[0], func(item *domain.MappingItem) {
			if cmd.Flags().Changed("type") {
				typeStr, _ := cmd.Flags().GetString("type")
				item.Type = domain.CoerceType(typeStr)
			}
			if cmd.Flags().Changed("name") {
				item.Name, _ = cmd.Flags().GetString("name")
			}
			if cmd.Flags().Changed("notes") {
				item.Notes, _ = cmd.Flags().GetString("notes")
			}
		})
		if err != nil {
			fmt.Printf("Error editing item: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated %s '%s'\n", item.Type, displayName(item))
	},
}

var itemRmCmd = &cobra.Command{
	Use:   "rm <item-id>...",
	Short: "Remove one or more items",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		hasError := false
		for _, id := range args {
			if err := app.RemoveItem(cmd.Context(), id); err != nil {
				fmt.Printf("Error removing '%s': %v\n", id, err)
				hasError = true
			} else {
				fmt.Printf("Removed item '%s'\n", id)
			}
		}
		if hasError {
			os.Exit(1)
		}
	},
}

var itemTagCmd = &cobra.Command{
	Use:   "tag <item-id> <domain>...",
	Short: "Tag an item with one or more domains",
	Long:  `Domains: awareness, coagency, practice, ethics, governance, reflection.`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runSetTags(cmd, args, true)
	},
}

var itemUntagCmd = &cobra.Command{
	Use:   "untag <item-id> <domain>...",
	Short: "Remove domain tags from an item",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runSetTags(cmd, args, false)
	},
}

func runSetTags(cmd *cobra.Command, args []string, on bool) {
	app := openApp(cmd)
	item, err := app.SetTags(cmd.Context(), args[0], toKeys(args[1:]), on)
	if err != nil {
		fmt.Printf("Error tagging item: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("'%s' now tagged: %s\n", displayName(item), tagSummary(item))
}

func toKeys(names []string) []domain.Key {
	keys := make([]domain.Key, len(names))
	for i, n := range names {
		keys[i] = domain.Key(strings.ToLower(strings.TrimSpace(n)))
	}
	return keys
}

// shortID abbreviates UUIDs for display; imported IDs may be arbitrary
// strings, so never assume length.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func displayName(item domain.MappingItem) string {
	if item.Name == "" {
		return "Untitled"
	}
	return item.Name
}

func tagSummary(item domain.MappingItem) string {
	active := item.DomainTags.Active()
	if len(active) == 0 {
		return "none"
	}
	parts := make([]string, len(active))
	for i, k := range active {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

func init() {
	itemAddCmd.Flags().String("type", "Module", "Item type: Module, Activity or Assessment")
	itemAddCmd.Flags().String("name", "", "Item name")
	itemAddCmd.Flags().String("notes", "", "Free-text notes")
	itemAddCmd.Flags().StringSlice("tags", nil, "Domain keys to tag immediately")

	itemEditCmd.Flags().String("type", "", "Item type: Module, Activity or Assessment")
	itemEditCmd.Flags().String("name", "", "Item name")
	itemEditCmd.Flags().String("notes", "", "Free-text notes")

	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemLsCmd)
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemEditCmd)
	itemCmd.AddCommand(itemRmCmd)
	itemCmd.AddCommand(itemTagCmd)
	itemCmd.AddCommand(itemUntagCmd)
}
