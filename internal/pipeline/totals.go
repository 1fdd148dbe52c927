package pipeline

import (
	"github.com/theirongolddev/kakeibo/internal/ledger"
	"github.com/theirongolddev/kakeibo/internal/model"
)

// ComputeTotals composes shift income, expense totals, and deal cash-flow
// into the monthly totals report. All values are in the reference
// currency; deal payments without a usable FX rate are excluded from the
// month's flow (but still counted in each deal's own-currency balance).
func ComputeTotals(st *model.State, monthKey string) model.Totals {
	if monthKey == "" {
		monthKey = model.CurrentMonthKey()
	}

	shifts := ShiftIncome(st)
	fixed := ExpenseTotal(&st.MonthData, model.ExpenseFixed)
	variable := ExpenseTotal(&st.MonthData, model.ExpenseVariable)
	received, paid := ledger.MonthFlow(st.Deals, monthKey, st.FX)

	income := shifts + received
	expenses := fixed + variable + paid
	balance := income - expenses
	sent := st.MonthData.SentJPY

	return model.Totals{
		Shifts:   shifts,
		Received: received,
		Paid:     paid,
		Fixed:    fixed,
		Variable: variable,
		Income:   income,
		Expenses: expenses,
		Balance:  balance,
		Sent:     sent,
		Diff:     balance - sent,
	}
}
