// Items command lists every item in the registry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "View all items",
	Long: `Items lists the full items collection in insertion order.

Example:
  lostfound items
  lostfound items --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := attachRegistry()
		if err != nil {
			return err
		}
		defer registry.Detach()

		items, err := registry.Items()
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		return printItems(items)
	},
}
