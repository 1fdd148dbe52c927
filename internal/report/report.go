// Package report renders the printable monthly document: settings and FX
// metadata, income breakdown, deal cash-flow, expense tables, totals, and
// FX-adjusted savings.
package report

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kakeibo/internal/cli"
	"github.com/theirongolddev/kakeibo/internal/fx"
	"github.com/theirongolddev/kakeibo/internal/ledger"
	"github.com/theirongolddev/kakeibo/internal/model"
	"github.com/theirongolddev/kakeibo/internal/pipeline"
)

// Render builds the complete report for the state's active month.
func Render(st *model.State) string {
	totals := pipeline.ComputeTotals(st, st.Month)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(cli.RenderTitle(fmt.Sprintf("MONTHLY REPORT  %s", st.Month)))
	b.WriteString("\n\n")

	b.WriteString(metaSection(st))
	b.WriteString("\n")
	b.WriteString(incomeSection(st, totals))
	b.WriteString("\n")
	b.WriteString(dealsSection(totals))
	b.WriteString("\n")
	b.WriteString(expenseSection("Fixed Expenses", st.MonthData.Fixed))
	b.WriteString("\n")
	b.WriteString(expenseSection("Variable Expenses", st.MonthData.Variable))
	b.WriteString("\n")
	b.WriteString(totalsSection(totals))
	b.WriteString("\n")
	b.WriteString(savingsSection(st))

	return b.String()
}

func metaSection(st *model.State) string {
	set := st.Settings
	fxLine := "—"
	if st.FX.Date != "" {
		fxLine = fmt.Sprintf("JPY→BRL %s | JPY→USD %s",
			cli.FormatRate(st.FX.BRL), cli.FormatRate(st.FX.USD))
	}

	return cli.RenderTable(cli.Table{
		Title: "Details",
		Rows: [][]string{
			{"Month", st.Month},
			{"Name", cli.Dash(set.Name)},
			{"Company", cli.Dash(set.Company)},
			{"Range", cli.Dash(set.RangeText)},
			{"Hourly rate (JPY)", cli.FormatJPY(set.HourValue)},
			{"Overtime (x)", fmt.Sprintf("%.2f", set.OvertimeMult)},
			{"FX", fxLine},
		},
	})
}

func incomeSection(st *model.State, t model.Totals) string {
	return cli.RenderTable(cli.Table{
		Title: "Income",
		Rows: [][]string{
			{"Shift A days", fmt.Sprintf("%.0f", st.MonthData.DaysA)},
			{"Shift B days", fmt.Sprintf("%.0f", st.MonthData.DaysB)},
			{"Bonus", cli.FormatJPY(st.MonthData.BonusJPY)},
			{"Shift income", cli.FormatJPY(t.Shifts)},
			{"Received (month)", cli.FormatJPY(t.Received)},
			{cli.Separator},
			{"Total income", cli.FormatJPY(t.Income)},
		},
	})
}

func dealsSection(t model.Totals) string {
	return cli.RenderTable(cli.Table{
		Title: "Deals (month)",
		Rows: [][]string{
			{"Received", cli.FormatJPY(t.Received)},
			{"Paid", cli.FormatJPY(t.Paid)},
			{"Net", cli.FormatJPY(t.Received - t.Paid)},
		},
	})
}

func expenseSection(title string, rows []model.ExpenseRow) string {
	table := cli.Table{
		Title:   title,
		Headers: []string{"Description", "Amount (JPY)"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			cli.Dash(r.Desc),
			cli.FormatJPY(pipeline.RowCost(r)),
		})
	}
	return cli.RenderTable(table)
}

func totalsSection(t model.Totals) string {
	return cli.RenderTable(cli.Table{
		Title: "Totals",
		Rows: [][]string{
			{"Fixed expenses", cli.FormatJPY(t.Fixed)},
			{"Variable expenses", cli.FormatJPY(t.Variable)},
			{"Paid (month)", cli.FormatJPY(t.Paid)},
			{"Total expenses", cli.FormatJPY(t.Expenses)},
			{cli.Separator},
			{"Balance", cli.FormatJPY(t.Balance)},
			{"Sent", cli.FormatJPY(t.Sent)},
			{"Difference", cli.FormatSignedJPY(t.Diff)},
		},
	})
}

func savingsSection(st *model.State) string {
	saved := st.MonthData.SavedJPY

	brl := "—"
	if v, ok := fx.ToForeign(st.FX, saved, model.BRL); ok {
		brl = cli.FormatMoney(v, model.BRL)
	}
	usd := "—"
	if v, ok := fx.ToForeign(st.FX, saved, model.USD); ok {
		usd = cli.FormatMoney(v, model.USD)
	}

	return cli.RenderTable(cli.Table{
		Title: "Savings",
		Rows: [][]string{
			{"Saved (JPY)", cli.FormatJPY(saved)},
			{"In BRL", brl},
			{"In USD", usd},
		},
	})
}

// DealLines renders the persistent deal ledgers for the report appendix:
// every open deal with its paid progress and converted remaining balance.
func DealLines(st *model.State) string {
	var b strings.Builder
	writeSide := func(title string, deals []model.Deal) {
		if len(deals) == 0 {
			return
		}
		table := cli.Table{
			Title:   title,
			Headers: []string{"Deal", "Currency", "Total", "Remaining", "In JPY", "Progress"},
		}
		for _, d := range deals {
			inRef := "—"
			if v, ok := ledger.RemainingInReference(d, st.FX); ok {
				inRef = cli.FormatJPY(v)
			}
			table.Rows = append(table.Rows, []string{
				cli.Dash(d.Title),
				string(d.Currency),
				cli.FormatMoney(d.Total, d.Currency),
				cli.FormatMoney(ledger.Remaining(d), d.Currency),
				inRef,
				cli.FormatPercent(ledger.Progress(d)),
			})
		}
		b.WriteString(cli.RenderTable(table))
		b.WriteString("\n")
	}

	writeSide("Receivables", st.Deals.Receivable)
	writeSide("Payables", st.Deals.Payable)
	return b.String()
}
