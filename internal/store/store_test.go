package store

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/kakeibo/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kakeibo.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, _, ok, err := s.LoadSettings(); err != nil || ok {
		t.Fatalf("fresh LoadSettings = ok %v, err %v; want miss", ok, err)
	}

	set := model.DefaultSettings()
	set.Name = "Hana"
	set.HourValue = 1200
	if err := s.SaveSettings(set, "2025-03"); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, month, ok, err := s.LoadSettings()
	if err != nil || !ok {
		t.Fatalf("LoadSettings = ok %v, err %v", ok, err)
	}
	if month != "2025-03" {
		t.Fatalf("active month = %q, want 2025-03", month)
	}
	if got.Name != "Hana" || got.HourValue != 1200 {
		t.Fatalf("settings = %+v", got)
	}
	if !got.Autosave {
		t.Fatal("Autosave flag lost in round trip")
	}
}

func TestMonthRoundTrip(t *testing.T) {
	s := openTestStore(t)

	md := model.MonthData{
		DaysA:    10,
		DaysB:    2,
		BonusJPY: 5000,
		SentJPY:  40000,
		SavedJPY: 120000,
		Fixed: []model.ExpenseRow{
			{ID: "f1", Desc: "Rent", Monthly: 80000},
		},
		Variable: []model.ExpenseRow{
			{ID: "v1", Desc: "Groceries", UseDaily: true, Values: []float64{500, 0, 1500}},
		},
	}
	if err := s.SaveMonth("2025-03", md); err != nil {
		t.Fatalf("SaveMonth: %v", err)
	}

	got, ok, err := s.LoadMonth("2025-03")
	if err != nil || !ok {
		t.Fatalf("LoadMonth = ok %v, err %v", ok, err)
	}
	if got.DaysA != 10 || got.BonusJPY != 5000 || got.SavedJPY != 120000 {
		t.Fatalf("month scalars = %+v", got)
	}
	if len(got.Fixed) != 1 || got.Fixed[0].Desc != "Rent" {
		t.Fatalf("fixed rows = %+v", got.Fixed)
	}
	if len(got.Variable) != 1 || !got.Variable[0].UseDaily {
		t.Fatalf("variable rows = %+v", got.Variable)
	}
	if got.Variable[0].Values[2] != 1500 {
		t.Fatalf("day values = %v", got.Variable[0].Values)
	}

	if _, ok, _ := s.LoadMonth("1999-01"); ok {
		t.Fatal("unknown month should be a miss, not an error")
	}
}

func TestSaveMonthReplacesRows(t *testing.T) {
	s := openTestStore(t)

	md := model.MonthData{Fixed: []model.ExpenseRow{{ID: "f1", Desc: "Rent", Monthly: 80000}}}
	if err := s.SaveMonth("2025-03", md); err != nil {
		t.Fatalf("SaveMonth: %v", err)
	}

	md.Fixed = []model.ExpenseRow{{ID: "f2", Desc: "Insurance", Monthly: 9000}}
	if err := s.SaveMonth("2025-03", md); err != nil {
		t.Fatalf("SaveMonth: %v", err)
	}

	got, _, err := s.LoadMonth("2025-03")
	if err != nil {
		t.Fatalf("LoadMonth: %v", err)
	}
	if len(got.Fixed) != 1 || got.Fixed[0].ID != "f2" {
		t.Fatalf("rows not replaced: %+v", got.Fixed)
	}
}

func TestDeleteMonth(t *testing.T) {
	s := openTestStore(t)

	md := model.MonthData{DaysA: 5, Fixed: []model.ExpenseRow{{ID: "f1", Monthly: 100}}}
	if err := s.SaveMonth("2025-03", md); err != nil {
		t.Fatalf("SaveMonth: %v", err)
	}
	if err := s.DeleteMonth("2025-03"); err != nil {
		t.Fatalf("DeleteMonth: %v", err)
	}
	if _, ok, _ := s.LoadMonth("2025-03"); ok {
		t.Fatal("month still present after delete")
	}
}

func TestDealsRoundTripPreservesOrder(t *testing.T) {
	s := openTestStore(t)

	deals := model.Deals{
		Receivable: []model.Deal{
			{ID: "r1", Title: "Sofa", Currency: model.BRL, Total: 900, CreatedAt: "2025-03-01",
				Payments: []model.Payment{
					{ID: "p1", Date: "2025-03-02", Amount: 300},
					{ID: "p2", Date: "2025-03-10", Amount: 100},
				}},
			{ID: "r2", Title: "Camera", Currency: model.USD, Total: 450, CreatedAt: "2025-03-05"},
		},
		Payable: []model.Deal{
			{ID: "y1", Title: "Loan", Currency: model.JPY, Total: 50000, CreatedAt: "2025-02-20"},
		},
	}
	if err := s.SaveDeals(deals); err != nil {
		t.Fatalf("SaveDeals: %v", err)
	}

	got, err := s.LoadDeals()
	if err != nil {
		t.Fatalf("LoadDeals: %v", err)
	}
	if len(got.Receivable) != 2 || len(got.Payable) != 1 {
		t.Fatalf("ledger sizes = %d/%d", len(got.Receivable), len(got.Payable))
	}
	if got.Receivable[0].ID != "r1" || got.Receivable[1].ID != "r2" {
		t.Fatalf("receivable order = %s, %s", got.Receivable[0].ID, got.Receivable[1].ID)
	}
	if len(got.Receivable[0].Payments) != 2 {
		t.Fatalf("payments = %+v", got.Receivable[0].Payments)
	}
	if got.Receivable[0].Payments[0].ID != "p1" {
		t.Fatalf("payments out of date order: %+v", got.Receivable[0].Payments)
	}
	if got.Payable[0].Currency != model.JPY {
		t.Fatalf("payable currency = %s", got.Payable[0].Currency)
	}
}

func TestDeleteDealCascadesPayments(t *testing.T) {
	s := openTestStore(t)

	d := model.Deal{ID: "r1", Title: "Sofa", Currency: model.BRL, Total: 900, CreatedAt: "2025-03-01",
		Payments: []model.Payment{{ID: "p1", Date: "2025-03-02", Amount: 300}}}
	if err := s.SaveDeal(model.DealReceivable, d, 0); err != nil {
		t.Fatalf("SaveDeal: %v", err)
	}
	if err := s.DeleteDeal("r1"); err != nil {
		t.Fatalf("DeleteDeal: %v", err)
	}

	got, err := s.LoadDeals()
	if err != nil {
		t.Fatalf("LoadDeals: %v", err)
	}
	if len(got.Receivable) != 0 {
		t.Fatalf("deal still present: %+v", got.Receivable)
	}
}

func TestFXRoundTrip(t *testing.T) {
	s := openTestStore(t)

	brl, usd := 0.0378, 0.0067
	snap := model.Snapshot{
		Base: model.Reference, BRL: &brl, USD: &usd,
		Date: "2025-03-14", FetchedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := s.SaveFX(snap); err != nil {
		t.Fatalf("SaveFX: %v", err)
	}

	got, ok, err := s.LoadFX("2025-03-14")
	if err != nil || !ok {
		t.Fatalf("LoadFX = ok %v, err %v", ok, err)
	}
	if math.Abs(*got.BRL-brl) > 1e-9 || math.Abs(*got.USD-usd) > 1e-9 {
		t.Fatalf("rates = %v/%v", *got.BRL, *got.USD)
	}

	latest, ok, err := s.LatestFX()
	if err != nil || !ok {
		t.Fatalf("LatestFX = ok %v, err %v", ok, err)
	}
	if latest.Date != "2025-03-14" {
		t.Fatalf("latest date = %q", latest.Date)
	}
}

func TestSaveFXRejectsIncomplete(t *testing.T) {
	s := openTestStore(t)

	brl := 0.0378
	snap := model.Snapshot{Base: model.Reference, BRL: &brl, Date: "2025-03-14"}
	if err := s.SaveFX(snap); err == nil {
		t.Fatal("incomplete snapshot was cached")
	}
}

func TestLoadStateDefaultsAndNormalization(t *testing.T) {
	s := openTestStore(t)

	st, err := s.LoadState("")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if st.Month != model.CurrentMonthKey() {
		t.Fatalf("fresh month = %q, want current", st.Month)
	}
	if st.Settings.OvertimeMult != 1.25 {
		t.Fatalf("default OvertimeMult = %v", st.Settings.OvertimeMult)
	}
	if len(st.MonthData.Fixed) == 0 {
		t.Fatal("default month should seed expense rows")
	}
	for _, r := range st.MonthData.Fixed {
		if len(r.Values) != model.DaysInMonth {
			t.Fatalf("day array length = %d", len(r.Values))
		}
	}
}

func TestLoadStateHonorsActiveMonth(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveSettings(model.DefaultSettings(), "2024-12"); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	st, err := s.LoadState("")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if st.Month != "2024-12" {
		t.Fatalf("month = %q, want saved active month", st.Month)
	}

	st, err = s.LoadState("2025-02")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if st.Month != "2025-02" {
		t.Fatalf("month = %q, explicit key should win", st.Month)
	}
}
