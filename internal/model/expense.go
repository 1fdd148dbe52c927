package model

// ExpenseKind separates the two expense collections of a month.
type ExpenseKind string

const (
	ExpenseFixed    ExpenseKind = "fixed"
	ExpenseVariable ExpenseKind = "variable"
)

// Valid reports whether k is a known expense kind.
func (k ExpenseKind) Valid() bool {
	return k == ExpenseFixed || k == ExpenseVariable
}

// ExpenseRow is one expense line. Exactly one of Monthly or Values is
// authoritative, selected by UseDaily: either a flat monthly amount or a
// per-day breakdown with one slot per possible calendar day.
type ExpenseRow struct {
	ID       string
	Desc     string
	Monthly  float64
	Values   []float64 // always DaysInMonth entries after Normalize
	UseDaily bool
}

// NewExpenseRow returns a flat-mode row with a zeroed day breakdown.
func NewExpenseRow(desc string) ExpenseRow {
	return ExpenseRow{
		ID:     NewID(),
		Desc:   desc,
		Values: make([]float64, DaysInMonth),
	}
}

// ToggleDaily flips the active mode. Switching to daily zeroes the flat
// amount, matching the single-authoritative-field invariant.
func (r *ExpenseRow) ToggleDaily() {
	r.UseDaily = !r.UseDaily
	if r.UseDaily {
		r.Monthly = 0
	}
}

// SetDay records an amount for a 1-based calendar day. Out-of-range days
// are ignored.
func (r *ExpenseRow) SetDay(day int, amount float64) {
	if day < 1 || day > DaysInMonth {
		return
	}
	if len(r.Values) < DaysInMonth {
		r.Values = padDays(r.Values)
	}
	r.Values[day-1] = amount
}

func padDays(values []float64) []float64 {
	out := make([]float64, DaysInMonth)
	copy(out, values)
	return out
}
