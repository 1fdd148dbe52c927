package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/kakeibo/internal/cli"
	"github.com/theirongolddev/kakeibo/internal/fx"
	"github.com/theirongolddev/kakeibo/internal/ledger"
	"github.com/theirongolddev/kakeibo/internal/model"
	"github.com/theirongolddev/kakeibo/internal/pipeline"
)

var (
	colorAccent = lipgloss.Color("#3AA99F")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorText   = lipgloss.Color("#FFFCF0")
	colorWarn   = lipgloss.Color("#DA702C")

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorAccent).
			Padding(0, 2)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)

	noteStyle = lipgloss.NewStyle().Foreground(colorWarn)
	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// View renders the dashboard.
func (a App) View() string {
	if !a.loaded {
		return fmt.Sprintf("\n\n  %s loading...\n", a.spinner.View())
	}
	if a.loadErr != nil {
		return fmt.Sprintf("\n\n  could not load data: %v\n\n  press q to quit\n", a.loadErr)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverview())
	case tabExpenses:
		b.WriteString(a.renderExpenses())
	case tabDeals:
		b.WriteString(a.renderDeals())
	case tabFX:
		b.WriteString(a.renderFX())
	}

	if a.fxNote != "" {
		b.WriteString("\n")
		b.WriteString(noteStyle.Render("  " + a.fxNote))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  tab/1-4 switch · r reload · R refresh FX · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (a App) renderTabs() string {
	parts := make([]string, 0, tabCount+1)
	parts = append(parts, "  ")
	for i, name := range tabNames {
		if i == a.activeTab {
			parts = append(parts, tabActiveStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a App) renderOverview() string {
	t := pipeline.ComputeTotals(a.state, a.state.Month)

	return cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Month %s", a.state.Month),
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
	})
}

func (a App) renderExpenses() string {
	var b strings.Builder
	render := func(title string, kind model.ExpenseKind) {
		table := cli.Table{
			Title:   title,
			Headers: []string{"Description", "Mode", "Cost (JPY)"},
		}
		for _, r := range a.state.MonthData.Rows(kind) {
			mode := "monthly"
			if r.UseDaily {
				mode = "daily"
			}
			table.Rows = append(table.Rows, []string{
				cli.Dash(r.Desc), mode, cli.FormatJPY(pipeline.RowCost(r)),
			})
		}
		b.WriteString(cli.RenderTable(table))
		b.WriteString("\n")
	}

	render("Fixed", model.ExpenseFixed)
	render("Variable", model.ExpenseVariable)
	return b.String()
}

func (a App) renderDeals() string {
	var b strings.Builder
	render := func(title string, deals []model.Deal) {
		if len(deals) == 0 {
			b.WriteString(helpStyle.Render(fmt.Sprintf("  %s: none\n", title)))
			b.WriteString("\n")
			return
		}
		table := cli.Table{
			Title:   title,
			Headers: []string{"Deal", "Person", "Remaining", "In JPY", "Progress"},
		}
		for _, d := range deals {
			inRef := "—"
			if v, ok := ledger.RemainingInReference(d, a.state.FX); ok {
				inRef = cli.FormatJPY(v)
			}
			table.Rows = append(table.Rows, []string{
				cli.Dash(d.Title),
				cli.Dash(d.Person),
				cli.FormatMoney(ledger.Remaining(d), d.Currency),
				inRef,
				cli.FormatPercent(ledger.Progress(d)),
			})
		}
		b.WriteString(cli.RenderTable(table))
		b.WriteString("\n")
	}

	render("Receivables", a.state.Deals.Receivable)
	render("Payables", a.state.Deals.Payable)

	received, paid := ledger.MonthFlow(a.state.Deals, a.state.Month, a.state.FX)
	b.WriteString(cli.RenderTable(cli.Table{
		Title: "This month",
		Rows: [][]string{
			{"Received", cli.FormatJPY(received)},
			{"Paid", cli.FormatJPY(paid)},
			{"Net", cli.FormatJPY(received - paid)},
		},
	}))
	return b.String()
}

func (a App) renderFX() string {
	snap := a.state.FX

	meta := "no rates fetched yet"
	if snap.Date != "" {
		meta = "quote date " + snap.Date
	}

	rows := [][]string{
		{"JPY → BRL", cli.FormatRate(snap.BRL)},
		{"JPY → USD", cli.FormatRate(snap.USD)},
	}

	saved := a.state.MonthData.SavedJPY
	brl := "—"
	if v, ok := fx.ToForeign(snap, saved, model.BRL); ok {
		brl = cli.FormatMoney(v, model.BRL)
	}
	usd := "—"
	if v, ok := fx.ToForeign(snap, saved, model.USD); ok {
		usd = cli.FormatMoney(v, model.USD)
	}
	rows = append(rows,
		[]string{cli.Separator},
		[]string{"Saved (JPY)", cli.FormatJPY(saved)},
		[]string{"Saved in BRL", brl},
		[]string{"Saved in USD", usd},
	)

	return cli.RenderTable(cli.Table{Title: "FX  " + meta, Rows: rows})
}
