// Add-user command creates an account. Admin only.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addUserID            int
	addUserName          string
	addUserEmail         string
	addUserPassword      string
	addUserRole          string
	addUserAdminEmail    string
	addUserAdminPassword string
)

var addUserCmd = &cobra.Command{
	Use:   "add-user",
	Short: "Create a new account (admin)",
	Long: `Add-user creates an account with the given fields. A role other than
"user" or "admin" is stored as "user". Administrator credentials are
required.

Example:
  lostfound add-user --id 3 --name "Carol" --email carol@dlfs.com --password pw \
    --role user --admin-email admin@dlfs.com --admin-password admin123`,
	RunE: runAddUser,
}

func init() {
	addUserCmd.Flags().IntVar(&addUserID, "id", 0, "numeric account ID (required)")
	addUserCmd.Flags().StringVar(&addUserName, "name", "", "account name (required)")
	addUserCmd.Flags().StringVar(&addUserEmail, "email", "", "account email (required)")
	addUserCmd.Flags().StringVar(&addUserPassword, "password", "", "account password (required)")
	addUserCmd.Flags().StringVar(&addUserRole, "role", "user", "account role: user or admin")
	addUserCmd.Flags().StringVar(&addUserAdminEmail, "admin-email", "", "administrator email (required)")
	addUserCmd.Flags().StringVar(&addUserAdminPassword, "admin-password", "", "administrator password (required)")
	_ = addUserCmd.MarkFlagRequired("id")
	_ = addUserCmd.MarkFlagRequired("name")
	_ = addUserCmd.MarkFlagRequired("email")
	_ = addUserCmd.MarkFlagRequired("password")
	_ = addUserCmd.MarkFlagRequired("admin-email")
	_ = addUserCmd.MarkFlagRequired("admin-password")
}

func runAddUser(cmd *cobra.Command, args []string) error {
	registry, err := attachRegistry()
	if err != nil {
		return err
	}
	defer registry.Detach()

	if _, err := requireAdmin(registry, addUserAdminEmail, addUserAdminPassword); err != nil {
		return err
	}

	if err := registry.AddAccount(addUserID, addUserName, addUserEmail, addUserPassword, addUserRole); err != nil {
		return fmt.Errorf("add account: %w", err)
	}

	fmt.Printf("Account created: %s (%d)\n", addUserEmail, addUserID)
	return nil
}
