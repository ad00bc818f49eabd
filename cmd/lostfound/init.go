// Init command creates the data directory and bootstraps the registry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the registry storage",
	Long: `Init creates the data directory, the three collection files, and the
two seeded default accounts on first run. Running init on an existing
registry is harmless; existing data is never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := attachRegistry()
		if err != nil {
			return err
		}
		defer registry.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Registry initialized in %s\n", dataDir)
		return nil
	},
}
