package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/cli"
	"github.com/theirongolddev/kakeibo/internal/fx"
	"github.com/theirongolddev/kakeibo/internal/model"
	"github.com/theirongolddev/kakeibo/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly totals at a glance",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	t := pipeline.ComputeTotals(st, st.Month)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("KAKEIBO  %s", st.Month)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Shift income", cli.FormatJPY(t.Shifts)},
			{"Received (deals)", cli.FormatJPY(t.Received)},
			{"Income", cli.FormatJPY(t.Income)},
			{cli.Separator},
			{"Fixed expenses", cli.FormatJPY(t.Fixed)},
			{"Variable expenses", cli.FormatJPY(t.Variable)},
			{"Paid (deals)", cli.FormatJPY(t.Paid)},
			{"Expenses", cli.FormatJPY(t.Expenses)},
			{cli.Separator},
			{"Balance", cli.FormatJPY(t.Balance)},
			{"Sent", cli.FormatJPY(t.Sent)},
			{"Difference", cli.FormatSignedJPY(t.Diff)},
		},
	}))

	dayA := pipeline.ShiftDayValue(st.Settings, model.ShiftA)
	dayB := pipeline.ShiftDayValue(st.Settings, model.ShiftB)
	fmt.Println(cli.Muted(fmt.Sprintf("  A(%.0f×%.0f) + B(%.0f×%.0f) + bonus(%.0f) + received(%.0f)",
		st.MonthData.DaysA, dayA, st.MonthData.DaysB, dayB,
		st.MonthData.BonusJPY, t.Received)))

	warnMissingRates(st)
	return nil
}

// warnMissingRates flags deals whose currency has no usable FX rate: their
// payments are excluded from the month's converted totals.
func warnMissingRates(st *model.State) {
	seen := map[model.Currency]bool{}
	check := func(deals []model.Deal) {
		for _, d := range deals {
			if !seen[d.Currency] && fx.Missing(st.FX, d.Currency) {
				seen[d.Currency] = true
				fmt.Println(cli.Warn(fmt.Sprintf("no %s rate loaded — %s payments excluded from converted totals (run `kakeibo fx refresh`)", d.Currency, d.Currency)))
			}
		}
	}
	check(st.Deals.Receivable)
	check(st.Deals.Payable)
}
