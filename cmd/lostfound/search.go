// Search commands query the items collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/lostfound/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search items by name, location, or type",
}

var searchNameCmd = &cobra.Command{
	Use:   "name <keyword>",
	Short: "Search items by keyword in the name",
	Long: `Search name matches the keyword case-insensitively against each
item's name.

Example:
  lostfound search name wallet`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(func(r types.Registry) ([]types.Item, error) {
			return r.SearchByName(args[0])
		})
	},
}

var searchLocationCmd = &cobra.Command{
	Use:   "location <location>",
	Short: "Search items by location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(func(r types.Registry) ([]types.Item, error) {
			return r.SearchByLocation(args[0])
		})
	},
}

var searchTypeCmd = &cobra.Command{
	Use:   "type <lost|found>",
	Short: "Search items by item type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(func(r types.Registry) ([]types.Item, error) {
			return r.SearchByType(args[0])
		})
	},
}

func init() {
	searchCmd.AddCommand(searchNameCmd)
	searchCmd.AddCommand(searchLocationCmd)
	searchCmd.AddCommand(searchTypeCmd)
}

func runSearch(query func(types.Registry) ([]types.Item, error)) error {
	registry, err := attachRegistry()
	if err != nil {
		return err
	}
	defer registry.Detach()

	results, err := query(registry)
	if err != nil {
		return fmt.Errorf("search items: %w", err)
	}
	return printItems(results)
}
