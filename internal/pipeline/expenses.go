package pipeline

import "github.com/theirongolddev/kakeibo/internal/model"

// RowCost returns the month cost of one expense row. In daily mode it is
// the sum of all day values; otherwise the flat monthly amount. Never
// both: the inactive field is ignored regardless of its stored value.
func RowCost(r model.ExpenseRow) float64 {
	if r.UseDaily {
		var total float64
		for _, v := range r.Values {
			total += v
		}
		return total
	}
	return r.Monthly
}

// ExpenseTotal sums RowCost over all rows of the given kind.
func ExpenseTotal(m *model.MonthData, kind model.ExpenseKind) float64 {
	var total float64
	for _, r := range m.Rows(kind) {
		total += RowCost(r)
	}
	return total
}
