// Export command builds a SQLite snapshot of the registry. Admin only.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/lostfound/internal/export"
)

var (
	exportDBPath        string
	exportAdminEmail    string
	exportAdminPassword string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the registry to a SQLite database (admin)",
	Long: `Export writes every account, item, and claim into a SQLite database
for ad-hoc reporting queries. An existing database file is replaced. The
JSON collection files remain the source of truth.

Example:
  lostfound export --db registry.db --admin-email admin@dlfs.com --admin-password admin123`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDBPath, "db", "registry.db", "path of the SQLite database to write")
	exportCmd.Flags().StringVar(&exportAdminEmail, "admin-email", "", "administrator email (required)")
	exportCmd.Flags().StringVar(&exportAdminPassword, "admin-password", "", "administrator password (required)")
	_ = exportCmd.MarkFlagRequired("admin-email")
	_ = exportCmd.MarkFlagRequired("admin-password")
}

func runExport(cmd *cobra.Command, args []string) error {
	registry, err := attachRegistry()
	if err != nil {
		return err
	}
	defer registry.Detach()

	if _, err := requireAdmin(registry, exportAdminEmail, exportAdminPassword); err != nil {
		return err
	}

	accounts, err := registry.Accounts()
	if err != nil {
		return fmt.Errorf("read accounts: %w", err)
	}
	items, err := registry.Items()
	if err != nil {
		return fmt.Errorf("read items: %w", err)
	}
	claims, err := registry.Claims()
	if err != nil {
		return fmt.Errorf("read claims: %w", err)
	}

	snap := export.Snapshot{Accounts: accounts, Items: items, Claims: claims}
	if err := export.Write(exportDBPath, snap); err != nil {
		return fmt.Errorf("export registry: %w", err)
	}

	fmt.Printf("Exported %d account(s), %d item(s), %d claim(s) to %s\n",
		len(accounts), len(items), len(claims), exportDBPath)
	return nil
}
