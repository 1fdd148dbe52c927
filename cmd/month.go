package cmd

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/cli"
	"github.com/theirongolddev/kakeibo/internal/model"
)

var monthKeyRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Manage the active month",
}

var monthUseCmd = &cobra.Command{
	Use:   "use <2006-01>",
	Short: "Switch the active month, loading or creating its data",
	Args:  cobra.ExactArgs(1),
	RunE:  runMonthUse,
}

var monthShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active month's raw numbers",
	RunE:  runMonthShow,
}

var (
	flagDaysA, flagDaysB           string
	flagBonus, flagSent, flagSaved string
)

var monthSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set shift days, bonus, sent, or saved amounts",
	RunE:  runMonthSet,
}

var flagClearYes bool

var monthClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the active month's data",
	RunE:  runMonthClear,
}

func init() {
	monthSetCmd.Flags().StringVar(&flagDaysA, "days-a", "", "Worked days, shift A")
	monthSetCmd.Flags().StringVar(&flagDaysB, "days-b", "", "Worked days, shift B")
	monthSetCmd.Flags().StringVar(&flagBonus, "bonus", "", "Bonus (JPY)")
	monthSetCmd.Flags().StringVar(&flagSent, "sent", "", "Already transferred this month (JPY)")
	monthSetCmd.Flags().StringVar(&flagSaved, "saved", "", "Saved amount (JPY)")
	monthClearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Skip confirmation")

	monthCmd.AddCommand(monthUseCmd, monthShowCmd, monthSetCmd, monthClearCmd)
	rootCmd.AddCommand(monthCmd)
}

func runMonthUse(_ *cobra.Command, args []string) error {
	key := strings.TrimSpace(args[0])
	if !monthKeyRe.MatchString(key) {
		return fmt.Errorf("invalid month key %q, want 2006-01", key)
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	st, err := db.LoadState(key)
	if err != nil {
		return err
	}
	if err := saveState(db, st); err != nil {
		return err
	}

	fmt.Printf("  Active month: %s\n", st.Month)
	return nil
}

func runMonthShow(_ *cobra.Command, _ []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Month %s", st.Month),
		Rows: [][]string{
			{"Shift A days", fmt.Sprintf("%.0f", st.MonthData.DaysA)},
			{"Shift B days", fmt.Sprintf("%.0f", st.MonthData.DaysB)},
			{"Bonus", cli.FormatJPY(st.MonthData.BonusJPY)},
			{"Sent", cli.FormatJPY(st.MonthData.SentJPY)},
			{"Saved", cli.FormatJPY(st.MonthData.SavedJPY)},
			{"Fixed rows", fmt.Sprintf("%d", len(st.MonthData.Fixed))},
			{"Variable rows", fmt.Sprintf("%d", len(st.MonthData.Variable))},
		},
	}))
	return nil
}

func runMonthSet(_ *cobra.Command, _ []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Free numeric entry: malformed input coerces to 0 by the documented
	// sanitization rule, it does not error.
	set := func(raw string, dst *float64) {
		if raw != "" {
			*dst = model.ParseAmount(raw)
		}
	}
	set(flagDaysA, &st.MonthData.DaysA)
	set(flagDaysB, &st.MonthData.DaysB)
	set(flagBonus, &st.MonthData.BonusJPY)
	set(flagSent, &st.MonthData.SentJPY)
	set(flagSaved, &st.MonthData.SavedJPY)

	if err := saveState(db, st); err != nil {
		return err
	}
	return runMonthShow(nil, nil)
}

func runMonthClear(_ *cobra.Command, _ []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if !flagClearYes && !confirm(fmt.Sprintf("Clear all data for %s?", st.Month)) {
		fmt.Println("  Aborted.")
		return nil
	}

	if err := db.DeleteMonth(st.Month); err != nil {
		return err
	}
	fmt.Printf("  Cleared %s.\n", st.Month)
	return nil
}

// confirm asks a y/N question on stdin.
func confirm(question string) bool {
	fmt.Printf("  %s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
