// Report command records a lost or found item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/lostfound/pkg/types"
)

var (
	reportName        string
	reportDescription string
	reportLocation    string
	reportType        string
	reportReporter    int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report a lost or found item",
	Long: `Report records a new item with status "reported" and prints the
generated item ID.

Example:
  lostfound report --name "Wallet" --description "Black leather" --location "Library" --type lost --reporter 2
  lostfound report --name "Umbrella" --location "Cafeteria" --type found --reporter 1`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportName, "name", "", "item name (required)")
	reportCmd.Flags().StringVar(&reportDescription, "description", "", "item description")
	reportCmd.Flags().StringVar(&reportLocation, "location", "", "where the item was lost or found")
	reportCmd.Flags().StringVar(&reportType, "type", "", "item type: lost or found (required)")
	reportCmd.Flags().IntVar(&reportReporter, "reporter", 0, "account ID of the reporter")
	_ = reportCmd.MarkFlagRequired("name")
	_ = reportCmd.MarkFlagRequired("type")
}

func runReport(cmd *cobra.Command, args []string) error {
	if !types.ValidItemType(reportType) {
		return fmt.Errorf("%w: %q (must be %q or %q)", types.ErrInvalidItemType, reportType, types.ItemTypeLost, types.ItemTypeFound)
	}

	registry, err := attachRegistry()
	if err != nil {
		return err
	}
	defer registry.Detach()

	itemID, err := registry.ReportItem(reportName, reportDescription, reportLocation, reportType, reportReporter)
	if err != nil {
		return fmt.Errorf("report item: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"item_id": itemID})
	}
	fmt.Printf("%s item reported. Item ID: %s\n", reportType, itemID)
	return nil
}
