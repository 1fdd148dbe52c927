package report

import (
	"strings"
	"testing"

	"github.com/theirongolddev/kakeibo/internal/model"
)

func testState() *model.State {
	brl, usd := 0.04, 0.0067
	st := model.DefaultState()
	st.Month = "2025-03"
	st.Settings.Name = "Hana"
	st.Settings.HourValue = 1000
	st.MonthData.DaysA = 10
	st.MonthData.SavedJPY = 100000
	st.MonthData.Fixed = []model.ExpenseRow{{ID: "f1", Desc: "Rent", Monthly: 80000}}
	st.MonthData.Variable = nil
	st.Deals.Receivable = []model.Deal{{
		ID: "r1", Title: "Sofa", Currency: model.BRL, Total: 900,
		Payments: []model.Payment{{ID: "p1", Date: "2025-03-02", Amount: 300}},
	}}
	st.FX = model.Snapshot{Base: model.Reference, BRL: &brl, USD: &usd, Date: "2025-03-01"}
	model.Normalize(st)
	return st
}

func TestRenderIncludesKeyFigures(t *testing.T) {
	out := Render(testState())

	for _, want := range []string{
		"MONTHLY REPORT  2025-03",
		"Hana",
		"Rent",
		"¥ 80,000",
		"¥ 117,500", // 10 days of shift A at 1000/h
		"¥ 7,500",   // 300 BRL received at 0.04
		"Savings",
		"R$ 4000.00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q\n%s", want, out)
		}
	}
}

func TestRenderWithoutFX(t *testing.T) {
	st := testState()
	st.FX = model.Snapshot{}
	out := Render(st)

	if !strings.Contains(out, "—") {
		t.Fatal("missing rates should render as a dash")
	}
	// Unconvertible receivable payments drop out of the month totals.
	if strings.Contains(out, "¥ 7,500") {
		t.Fatal("converted amount should not appear without a rate")
	}
}

func TestDealLinesListsOpenDeals(t *testing.T) {
	out := DealLines(testState())

	for _, want := range []string{"Receivables", "Sofa", "R$ 600.00", "¥ 15,000", "33%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("deal lines missing %q\n%s", want, out)
		}
	}
}
