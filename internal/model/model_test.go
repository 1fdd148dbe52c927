package model

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"120", 120},
		{"120.5", 120.5},
		{"120,5", 120.5},
		{" 7 ", 7},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"-3.5", -3.5},
		{"Inf", 0},
		{"NaN", 0},
	}
	for _, c := range cases {
		if got := ParseAmount(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want Currency
	}{
		{"JPY", JPY},
		{"brl", BRL},
		{" usd ", USD},
		{"EUR", JPY},
		{"", JPY},
	}
	for _, c := range cases {
		if got := NormalizeCurrency(c.in); got != c.want {
			t.Fatalf("NormalizeCurrency(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestClampDayScale(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.0, 1.0},
		{0.95, 0.95},
		{0.5, 0.9},
		{2.0, 1.25},
		{0, 1.0},
		{-1, 1.0},
	}
	for _, c := range cases {
		if got := ClampDayScale(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("ClampDayScale(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf("2025-03-15"); got != "2025-03" {
		t.Fatalf("MonthOf = %q, want 2025-03", got)
	}
	if got := MonthOf("bad"); got != "" {
		t.Fatalf("MonthOf(bad) = %q, want empty", got)
	}
}

func TestExpenseRowSetDayPadsValues(t *testing.T) {
	row := NewExpenseRow("test")
	row.SetDay(31, 500)
	if len(row.Values) != DaysInMonth {
		t.Fatalf("Values length = %d, want %d", len(row.Values), DaysInMonth)
	}
	if row.Values[30] != 500 {
		t.Fatalf("day 31 value = %v, want 500", row.Values[30])
	}
}

func TestExpenseRowToggleDailyZeroesMonthly(t *testing.T) {
	row := NewExpenseRow("test")
	row.Monthly = 1000
	row.ToggleDaily()
	if !row.UseDaily {
		t.Fatal("row should be in daily mode after toggle")
	}
	if row.Monthly != 0 {
		t.Fatalf("Monthly = %v after switch to daily, want 0", row.Monthly)
	}
	row.ToggleDaily()
	if row.UseDaily {
		t.Fatal("row should be back in monthly mode")
	}
}

func TestNormalizeRepairsState(t *testing.T) {
	brl := 0.037
	st := &State{
		Month:    "",
		Settings: Settings{OvertimeMult: 0, DayScale: 3},
		MonthData: MonthData{
			Fixed: []ExpenseRow{
				{Desc: "rent", Values: []float64{1, 2}},
			},
		},
		Deals: Deals{
			Receivable: []Deal{
				{Title: "sale", Currency: "XYZ", Total: -50},
			},
		},
		FX: Snapshot{Base: Reference, BRL: &brl},
	}
	Normalize(st)

	if st.Month != CurrentMonthKey() {
		t.Fatalf("Month = %q, want current month key", st.Month)
	}
	if st.Settings.OvertimeMult != 1.25 {
		t.Fatalf("OvertimeMult = %v, want 1.25", st.Settings.OvertimeMult)
	}
	if st.Settings.DayScale != 1.25 {
		t.Fatalf("DayScale = %v, want clamped 1.25", st.Settings.DayScale)
	}
	if len(st.MonthData.Fixed[0].Values) != DaysInMonth {
		t.Fatalf("day values length = %d, want %d", len(st.MonthData.Fixed[0].Values), DaysInMonth)
	}
	deal := st.Deals.Receivable[0]
	if deal.ID == "" {
		t.Fatal("deal id not backfilled")
	}
	if deal.Currency != Reference {
		t.Fatalf("deal currency = %s, want %s", deal.Currency, Reference)
	}
	if deal.Total != 0 {
		t.Fatalf("negative total = %v, want 0", deal.Total)
	}
}

func TestSnapshotComplete(t *testing.T) {
	brl, usd := 0.037, 0.0067
	full := Snapshot{Base: Reference, BRL: &brl, USD: &usd}
	if !full.Complete() {
		t.Fatal("snapshot with both rates should be complete")
	}
	partial := Snapshot{Base: Reference, BRL: &brl}
	if partial.Complete() {
		t.Fatal("snapshot missing USD should not be complete")
	}
	if _, ok := partial.Rate(USD); ok {
		t.Fatal("Rate(USD) should report missing")
	}
	if v, ok := partial.Rate(BRL); !ok || v != brl {
		t.Fatalf("Rate(BRL) = %v, %v; want %v, true", v, ok, brl)
	}
}
