package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/cli"
	"github.com/theirongolddev/kakeibo/internal/model"
	"github.com/theirongolddev/kakeibo/internal/pipeline"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage the month's expense rows",
}

var (
	flagExpKind    string
	flagExpDesc    string
	flagExpMonthly string
)

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense row",
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the month's expense rows",
	RunE:  runExpenseList,
}

var expenseSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update a row's description or flat monthly amount",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseSet,
}

var expenseDayCmd = &cobra.Command{
	Use:   "day <id> <day> <amount>",
	Short: "Set one calendar day's amount on a row",
	Args:  cobra.ExactArgs(3),
	RunE:  runExpenseDay,
}

var expenseToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Switch a row between flat-monthly and per-day mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseToggle,
}

var expenseRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an expense row",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseRm,
}

func init() {
	expenseCmd.PersistentFlags().StringVarP(&flagExpKind, "kind", "k", "fixed", "Expense kind: fixed or variable")
	expenseAddCmd.Flags().StringVarP(&flagExpDesc, "desc", "d", "", "Description")
	expenseAddCmd.Flags().StringVar(&flagExpMonthly, "monthly", "", "Flat monthly amount (JPY)")
	expenseSetCmd.Flags().StringVarP(&flagExpDesc, "desc", "d", "", "Description")
	expenseSetCmd.Flags().StringVar(&flagExpMonthly, "monthly", "", "Flat monthly amount (JPY)")

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseSetCmd,
		expenseDayCmd, expenseToggleCmd, expenseRmCmd)
	rootCmd.AddCommand(expenseCmd)
}

func expenseKind() (model.ExpenseKind, error) {
	kind := model.ExpenseKind(flagExpKind)
	if !kind.Valid() {
		return "", fmt.Errorf("unknown expense kind %q, want fixed or variable", flagExpKind)
	}
	return kind, nil
}

// findExpenseRow locates a row by id in either collection; the id may be
// a unique prefix. The kind flag is ignored for lookups so ids work
// without remembering which list a row is in.
func findExpenseRow(md *model.MonthData, id string) (*model.ExpenseRow, error) {
	var found *model.ExpenseRow
	matches := 0
	for _, kind := range []model.ExpenseKind{model.ExpenseFixed, model.ExpenseVariable} {
		rows := md.Rows(kind)
		for i := range rows {
			if rows[i].ID == id {
				return &rows[i], nil
			}
			if len(id) >= 6 && len(rows[i].ID) >= len(id) && rows[i].ID[:len(id)] == id {
				found = &rows[i]
				matches++
			}
		}
	}
	switch matches {
	case 0:
		return nil, fmt.Errorf("no expense row with id %q", id)
	case 1:
		return found, nil
	default:
		return nil, fmt.Errorf("id prefix %q is ambiguous", id)
	}
}

func runExpenseAdd(_ *cobra.Command, _ []string) error {
	kind, err := expenseKind()
	if err != nil {
		return err
	}

	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	row := model.NewExpenseRow(flagExpDesc)
	row.Monthly = model.ParseAmount(flagExpMonthly)
	st.MonthData.SetRows(kind, append(st.MonthData.Rows(kind), row))

	if err := saveState(db, st); err != nil {
		return err
	}
	fmt.Printf("  Added %s row %s.\n", kind, shortID(row.ID))
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Println()
	for _, kind := range []model.ExpenseKind{model.ExpenseFixed, model.ExpenseVariable} {
		table := cli.Table{
			Title:   string(kind),
			Headers: []string{"ID", "Description", "Mode", "Cost (JPY)"},
		}
		for _, r := range st.MonthData.Rows(kind) {
			mode := "monthly"
			if r.UseDaily {
				mode = "daily"
			}
			table.Rows = append(table.Rows, []string{
				shortID(r.ID), cli.Dash(r.Desc), mode, cli.FormatJPY(pipeline.RowCost(r)),
			})
		}
		table.Rows = append(table.Rows, []string{cli.Separator},
			[]string{"", "Total", "", cli.FormatJPY(pipeline.ExpenseTotal(&st.MonthData, kind))})
		fmt.Print(cli.RenderTable(table))
		fmt.Println()
	}
	return nil
}

func runExpenseSet(_ *cobra.Command, args []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	row, err := findExpenseRow(&st.MonthData, args[0])
	if err != nil {
		return err
	}
	if flagExpDesc != "" {
		row.Desc = flagExpDesc
	}
	if flagExpMonthly != "" {
		row.Monthly = model.ParseAmount(flagExpMonthly)
	}

	return saveState(db, st)
}

func runExpenseDay(_ *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[1])
	if err != nil || day < 1 || day > model.DaysInMonth {
		return fmt.Errorf("day must be 1-%d", model.DaysInMonth)
	}

	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	row, err := findExpenseRow(&st.MonthData, args[0])
	if err != nil {
		return err
	}
	row.SetDay(day, model.ParseAmount(args[2]))
	if !row.UseDaily {
		fmt.Println(cli.Muted("  note: row is in monthly mode; day values are ignored until you toggle it"))
	}

	return saveState(db, st)
}

func runExpenseToggle(_ *cobra.Command, args []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	row, err := findExpenseRow(&st.MonthData, args[0])
	if err != nil {
		return err
	}
	row.ToggleDaily()

	mode := "monthly"
	if row.UseDaily {
		mode = "daily"
	}
	if err := saveState(db, st); err != nil {
		return err
	}
	fmt.Printf("  Row %s now in %s mode.\n", shortID(row.ID), mode)
	return nil
}

func runExpenseRm(_ *cobra.Command, args []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	row, err := findExpenseRow(&st.MonthData, args[0])
	if err != nil {
		return err
	}
	id := row.ID

	for _, kind := range []model.ExpenseKind{model.ExpenseFixed, model.ExpenseVariable} {
		rows := st.MonthData.Rows(kind)
		for i := range rows {
			if rows[i].ID == id {
				st.MonthData.SetRows(kind, append(rows[:i], rows[i+1:]...))
				if err := saveState(db, st); err != nil {
					return err
				}
				fmt.Printf("  Removed row %s.\n", shortID(id))
				return nil
			}
		}
	}
	return nil
}

// shortID truncates a uuid for display; full ids still work everywhere.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
