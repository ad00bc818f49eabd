// Approve command approves a pending claim. Admin only.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	approveClaimID       string
	approveAdminEmail    string
	approveAdminPassword string
)

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve a pending claim (admin)",
	Long: `Approve marks a claim as approved and the referenced item as claimed.
Administrator credentials are required.

Example:
  lostfound approve --claim CLM-5678 --admin-email admin@dlfs.com --admin-password admin123`,
	RunE: runApprove,
}

func init() {
	approveCmd.Flags().StringVar(&approveClaimID, "claim", "", "claim ID to approve (required)")
	approveCmd.Flags().StringVar(&approveAdminEmail, "admin-email", "", "administrator email (required)")
	approveCmd.Flags().StringVar(&approveAdminPassword, "admin-password", "", "administrator password (required)")
	_ = approveCmd.MarkFlagRequired("claim")
	_ = approveCmd.MarkFlagRequired("admin-email")
	_ = approveCmd.MarkFlagRequired("admin-password")
}

func runApprove(cmd *cobra.Command, args []string) error {
	registry, err := attachRegistry()
	if err != nil {
		return err
	}
	defer registry.Detach()

	if _, err := requireAdmin(registry, approveAdminEmail, approveAdminPassword); err != nil {
		return err
	}

	ok, err := registry.ApproveClaim(approveClaimID)
	if err != nil {
		return fmt.Errorf("approve claim: %w", err)
	}
	if !ok {
		return fmt.Errorf("claim %s not found", approveClaimID)
	}

	fmt.Println("Claim approved.")
	return nil
}
