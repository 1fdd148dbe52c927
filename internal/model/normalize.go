package model

// Normalize repairs a state loaded from storage: day arrays are padded or
// truncated to exactly DaysInMonth entries, unknown deal currencies fall
// back to the reference currency, missing ids and dates are backfilled,
// and the display scale is clamped to its allowed range.
func Normalize(st *State) {
	normalizeRows(st.MonthData.Fixed)
	normalizeRows(st.MonthData.Variable)
	normalizeDeals(st.Deals.Receivable)
	normalizeDeals(st.Deals.Payable)

	st.Settings.DayScale = ClampDayScale(st.Settings.DayScale)
	if st.Settings.OvertimeMult == 0 {
		st.Settings.OvertimeMult = 1.25
	}
	if st.Month == "" {
		st.Month = CurrentMonthKey()
	}
}

func normalizeRows(rows []ExpenseRow) {
	for i := range rows {
		r := &rows[i]
		if r.ID == "" {
			r.ID = NewID()
		}
		if len(r.Values) != DaysInMonth {
			r.Values = padDays(r.Values)
		}
	}
}

func normalizeDeals(deals []Deal) {
	for i := range deals {
		d := &deals[i]
		if d.ID == "" {
			d.ID = NewID()
		}
		if !d.Currency.Valid() {
			d.Currency = Reference
		}
		if d.Total < 0 {
			d.Total = 0
		}
		if d.CreatedAt == "" {
			d.CreatedAt = TodayISO()
		}
		for j := range d.Payments {
			p := &d.Payments[j]
			if p.ID == "" {
				p.ID = NewID()
			}
			if p.Date == "" {
				p.Date = TodayISO()
			}
		}
	}
}
