package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/report"
)

var flagReportDeals bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Printable monthly report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagReportDeals, "deals", false, "Append the open-deals ledger")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Print(report.Render(st))
	if flagReportDeals {
		fmt.Println()
		fmt.Print(report.DealLines(st))
	}
	return nil
}
