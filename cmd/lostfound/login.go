// Login command verifies account credentials.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/lostfound/pkg/types"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify account credentials",
	Long: `Login authenticates an account by email and password and prints the
matching account and its role.

Example:
  lostfound login --email admin@dlfs.com --password admin123`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	registry, err := attachRegistry()
	if err != nil {
		return err
	}
	defer registry.Detach()

	account, err := registry.Authenticate(loginEmail, loginPassword)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("invalid email or password")
		}
		return fmt.Errorf("authenticate: %w", err)
	}

	if flagJSON {
		return printJSON(account)
	}
	fmt.Printf("Login successful. Welcome %s (%s)\n", account.Name, account.Role)
	return nil
}
