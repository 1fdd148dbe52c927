// Package pipeline computes shift income, expense totals, and the monthly
// totals report from the current state. Everything here is a pure
// recomputation; there is no cached or derived state to invalidate.
package pipeline

import "github.com/theirongolddev/kakeibo/internal/model"

// ShiftDayValue returns the pay for one worked day of the given shift
// kind: hourly rate times normal hours plus extra hours at the overtime
// multiplier.
func ShiftDayValue(s model.Settings, kind model.ShiftKind) float64 {
	if kind == model.ShiftA {
		return s.HourValue * (s.ANormal + s.AExtra*s.OvertimeMult)
	}
	return s.HourValue * (s.BNormal + s.BExtra*s.OvertimeMult)
}

// ShiftIncome returns the month's total shift income in the reference
// currency: worked days of each kind at that kind's day value, plus the
// bonus.
func ShiftIncome(st *model.State) float64 {
	dayA := ShiftDayValue(st.Settings, model.ShiftA)
	dayB := ShiftDayValue(st.Settings, model.ShiftB)
	return st.MonthData.DaysA*dayA + st.MonthData.DaysB*dayB + st.MonthData.BonusJPY
}
