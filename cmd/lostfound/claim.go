// Claim command files a claim on an item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	claimUser int
	claimItem string
)

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "File a claim on an item",
	Long: `Claim submits an ownership claim referencing an account and an item.
The claim starts in status "pending" until an administrator approves it.

Example:
  lostfound claim --user 2 --item ITEM-1234`,
	RunE: runClaim,
}

func init() {
	claimCmd.Flags().IntVar(&claimUser, "user", 0, "account ID of the claimant (required)")
	claimCmd.Flags().StringVar(&claimItem, "item", "", "item ID to claim (required)")
	_ = claimCmd.MarkFlagRequired("user")
	_ = claimCmd.MarkFlagRequired("item")
}

func runClaim(cmd *cobra.Command, args []string) error {
	registry, err := attachRegistry()
	if err != nil {
		return err
	}
	defer registry.Detach()

	claimID, err := registry.ClaimItem(claimUser, claimItem)
	if err != nil {
		return fmt.Errorf("claim item: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"claim_id": claimID})
	}
	fmt.Printf("Claim submitted. Claim ID: %s\n", claimID)
	return nil
}
