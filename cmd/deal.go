package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/cli"
	"github.com/theirongolddev/kakeibo/internal/fx"
	"github.com/theirongolddev/kakeibo/internal/ledger"
	"github.com/theirongolddev/kakeibo/internal/model"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Manage receivable and payable deals",
}

var (
	flagDealKind     string
	flagDealTitle    string
	flagDealPerson   string
	flagDealCurrency string
	flagDealTotal    string
)

var dealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a deal from a fully-formed description",
	RunE:  runDealAdd,
}

var dealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open deals with balances and progress",
	RunE:  runDealList,
}

var flagDealYes bool

var dealRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a deal and its payments",
	Args:  cobra.ExactArgs(1),
	RunE:  runDealRm,
}

var (
	flagPayAmount string
	flagPayDate   string
)

var dealPayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Record a payment against a deal",
	Args:  cobra.ExactArgs(1),
	RunE:  runDealPay,
}

var dealUnpayCmd = &cobra.Command{
	Use:   "unpay <deal-id> <payment-id>",
	Short: "Remove a recorded payment",
	Args:  cobra.ExactArgs(2),
	RunE:  runDealUnpay,
}

func init() {
	dealAddCmd.Flags().StringVarP(&flagDealKind, "kind", "k", "receivable", "Deal kind: receivable or payable")
	dealAddCmd.Flags().StringVarP(&flagDealTitle, "title", "t", "", "What was sold or bought")
	dealAddCmd.Flags().StringVarP(&flagDealPerson, "person", "p", "", "Counterparty (optional)")
	dealAddCmd.Flags().StringVarP(&flagDealCurrency, "currency", "c", "JPY", "Deal currency: JPY, BRL, or USD")
	dealAddCmd.Flags().StringVar(&flagDealTotal, "total", "", "Total agreed amount, in the deal currency")
	_ = dealAddCmd.MarkFlagRequired("title")
	_ = dealAddCmd.MarkFlagRequired("total")

	dealRmCmd.Flags().BoolVarP(&flagDealYes, "yes", "y", false, "Skip confirmation")

	dealPayCmd.Flags().StringVarP(&flagPayAmount, "amount", "a", "", "Payment amount, in the deal currency")
	dealPayCmd.Flags().StringVarP(&flagPayDate, "date", "d", "", "Payment date (2006-01-02), default today")
	_ = dealPayCmd.MarkFlagRequired("amount")

	dealUnpayCmd.Flags().BoolVarP(&flagDealYes, "yes", "y", false, "Skip confirmation")

	dealCmd.AddCommand(dealAddCmd, dealListCmd, dealRmCmd, dealPayCmd, dealUnpayCmd)
	rootCmd.AddCommand(dealCmd)
}

func runDealAdd(_ *cobra.Command, _ []string) error {
	kind := model.DealKind(flagDealKind)
	if !kind.Valid() {
		return fmt.Errorf("unknown deal kind %q, want receivable or payable", flagDealKind)
	}

	deal, err := ledger.NewDeal(flagDealTitle, flagDealPerson, flagDealCurrency, model.ParseAmount(flagDealTotal))
	if err != nil {
		return err
	}

	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	st.Deals.SetSide(kind, append(st.Deals.Side(kind), deal))
	if err := db.SaveDeals(st.Deals); err != nil {
		return err
	}

	fmt.Printf("  Created %s %s (%s %s).\n", kind, shortID(deal.ID),
		cli.FormatMoney(deal.Total, deal.Currency), deal.Currency)
	if fx.Missing(st.FX, deal.Currency) {
		fmt.Println(cli.Warn("no FX rate loaded for this currency — refresh rates to see converted balances"))
	}
	return nil
}

func runDealList(_ *cobra.Command, _ []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Println()
	printSide := func(title string, deals []model.Deal) {
		if len(deals) == 0 {
			fmt.Println(cli.Muted(fmt.Sprintf("  %s: none", title)))
			fmt.Println()
			return
		}
		table := cli.Table{
			Title:   title,
			Headers: []string{"ID", "Deal", "Person", "Currency", "Total", "Remaining", "In JPY"},
		}
		for _, d := range deals {
			inRef := "—"
			if v, ok := ledger.RemainingInReference(d, st.FX); ok {
				inRef = cli.FormatJPY(v)
			}
			table.Rows = append(table.Rows, []string{
				shortID(d.ID),
				cli.Dash(d.Title),
				cli.Dash(d.Person),
				string(d.Currency),
				cli.FormatMoney(d.Total, d.Currency),
				cli.FormatMoney(ledger.Remaining(d), d.Currency),
				inRef,
			})
		}
		fmt.Print(cli.RenderTable(table))
		for _, d := range deals {
			fmt.Printf("  %s %s\n", shortID(d.ID), cli.RenderProgressBar(ledger.Progress(d), 24))
		}
		fmt.Println()
	}

	printSide("Receivables", st.Deals.Receivable)
	printSide("Payables", st.Deals.Payable)

	received, paid := ledger.MonthFlow(st.Deals, st.Month, st.FX)
	remR, remP := ledger.RemainingTotals(st.Deals, st.FX)
	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Month %s", st.Month),
		Rows: [][]string{
			{"Received", cli.FormatJPY(received)},
			{"Paid", cli.FormatJPY(paid)},
			{"Net", cli.FormatJPY(received - paid)},
			{cli.Separator},
			{"Open receivable (JPY)", cli.FormatJPY(remR)},
			{"Open payable (JPY)", cli.FormatJPY(remP)},
		},
	}))
	return nil
}

func runDealRm(_ *cobra.Command, args []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	deal, kind, ok := findDealByPrefix(&st.Deals, args[0])
	if !ok {
		return fmt.Errorf("no deal with id %q", args[0])
	}

	if !flagDealYes && !confirm(fmt.Sprintf("Remove %s %q and its payments?", kind, deal.Title)) {
		fmt.Println("  Aborted.")
		return nil
	}

	if err := db.DeleteDeal(deal.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed %s.\n", shortID(deal.ID))
	return nil
}

func runDealPay(_ *cobra.Command, args []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	deal, _, ok := findDealByPrefix(&st.Deals, args[0])
	if !ok {
		return fmt.Errorf("no deal with id %q", args[0])
	}

	payment, err := ledger.AddPayment(deal, flagPayDate, model.ParseAmount(flagPayAmount))
	if err != nil {
		return err
	}
	if err := db.SaveDeals(st.Deals); err != nil {
		return err
	}

	fmt.Printf("  Recorded %s %s on %s (payment %s).\n",
		cli.FormatMoney(payment.Amount, deal.Currency), deal.Currency,
		payment.Date, shortID(payment.ID))
	rem := ledger.Remaining(*deal)
	if rem == 0 {
		fmt.Println(cli.Muted("  Deal fully settled."))
	} else {
		fmt.Printf("  Remaining: %s %s\n", cli.FormatMoney(rem, deal.Currency), deal.Currency)
	}
	return nil
}

func runDealUnpay(_ *cobra.Command, args []string) error {
	db, st, err := loadState()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	deal, _, ok := findDealByPrefix(&st.Deals, args[0])
	if !ok {
		return fmt.Errorf("no deal with id %q", args[0])
	}

	paymentID := args[1]
	for _, p := range deal.Payments {
		if len(paymentID) >= 6 && len(p.ID) >= len(paymentID) && p.ID[:len(paymentID)] == paymentID {
			paymentID = p.ID
			break
		}
	}

	if !flagDealYes && !confirm(fmt.Sprintf("Remove payment %s from %q?", shortID(paymentID), deal.Title)) {
		fmt.Println("  Aborted.")
		return nil
	}

	if err := ledger.RemovePayment(deal, paymentID); err != nil {
		return err
	}
	if err := db.SaveDeals(st.Deals); err != nil {
		return err
	}
	fmt.Printf("  Removed payment %s.\n", shortID(paymentID))
	return nil
}

// findDealByPrefix resolves a deal by exact id or unique prefix.
func findDealByPrefix(deals *model.Deals, id string) (*model.Deal, model.DealKind, bool) {
	if d, kind, ok := ledger.FindDeal(deals, id); ok {
		return d, kind, true
	}
	if len(id) < 6 {
		return nil, "", false
	}

	var found *model.Deal
	var foundKind model.DealKind
	matches := 0
	scan := func(kind model.DealKind, side []model.Deal) {
		for i := range side {
			if len(side[i].ID) >= len(id) && side[i].ID[:len(id)] == id {
				found = &side[i]
				foundKind = kind
				matches++
			}
		}
	}
	scan(model.DealReceivable, deals.Receivable)
	scan(model.DealPayable, deals.Payable)

	if matches != 1 {
		return nil, "", false
	}
	return found, foundKind, true
}
