package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/cli"
	"github.com/theirongolddev/kakeibo/internal/fx"
	"github.com/theirongolddev/kakeibo/internal/model"
)

var flagSavingsSet string

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Saved amount and its foreign-currency equivalents",
	RunE:  runSavings,
}

func init() {
	savingsCmd.Flags().StringVar(&flagSavingsSet, "set", "", "Set the month's saved amount (JPY)")
	rootCmd.AddCommand(savingsCmd)
}

func runSavings(_ *cobra.Command, _ []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if flagSavingsSet != "" {
		st.MonthData.SavedJPY = model.ParseAmount(flagSavingsSet)
		if err := saveState(db, st); err != nil {
			return err
		}
	}

	rows := [][]string{
		{"Saved", cli.FormatJPY(st.MonthData.SavedJPY)},
	}
	for _, c := range []model.Currency{model.BRL, model.USD} {
		cell := "—"
		if v, ok := fx.ToForeign(st.FX, st.MonthData.SavedJPY, c); ok {
			cell = cli.FormatMoney(v, c)
		}
		rows = append(rows, []string{fmt.Sprintf("In %s", c), cell})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Savings %s", st.Month),
		Rows:  rows,
	}))
	if !st.FX.Complete() {
		fmt.Println(cli.Warn("rates missing — run `kakeibo fx refresh` for converted values"))
	}
	return nil
}
