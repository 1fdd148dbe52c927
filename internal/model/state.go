// Package model defines the domain types for the finance tracker:
// global settings, per-month data, deals with partial payments, and the
// cached FX snapshot.
package model

import (
	"errors"
	"time"
)

// DaysInMonth is the fixed size of every per-day expense breakdown.
// Unused trailing slots stay zero for shorter months.
const DaysInMonth = 31

var (
	// ErrInvalidAmount marks a non-positive or malformed required amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrEmptyTitle marks a deal created without a title.
	ErrEmptyTitle = errors.New("empty title")
)

// Settings holds the global, month-independent user configuration.
type Settings struct {
	Name         string
	Company      string
	RangeText    string
	HourValue    float64
	OvertimeMult float64
	Autosave     bool
	ANormal      float64
	AExtra       float64
	BNormal      float64
	BExtra       float64
	DayScale     float64
}

// MonthData is the mutable record for one calendar month.
type MonthData struct {
	DaysA    float64
	DaysB    float64
	BonusJPY float64
	SentJPY  float64
	SavedJPY float64
	Fixed    []ExpenseRow
	Variable []ExpenseRow
}

// Rows returns the expense rows for the given kind.
func (m *MonthData) Rows(kind ExpenseKind) []ExpenseRow {
	if kind == ExpenseFixed {
		return m.Fixed
	}
	return m.Variable
}

// SetRows replaces the expense rows for the given kind.
func (m *MonthData) SetRows(kind ExpenseKind, rows []ExpenseRow) {
	if kind == ExpenseFixed {
		m.Fixed = rows
	} else {
		m.Variable = rows
	}
}

// Deals holds the receivable and payable ledgers. Deals persist across
// months, unlike MonthData.
type Deals struct {
	Receivable []Deal
	Payable    []Deal
}

// Side returns the deal slice for the given kind.
func (d *Deals) Side(kind DealKind) []Deal {
	if kind == DealReceivable {
		return d.Receivable
	}
	return d.Payable
}

// SetSide replaces the deal slice for the given kind.
func (d *Deals) SetSide(kind DealKind, deals []Deal) {
	if kind == DealReceivable {
		d.Receivable = deals
	} else {
		d.Payable = deals
	}
}

// State is the whole tracked world: settings, the active month and its
// data, the persistent deal ledgers, and the current FX snapshot.
type State struct {
	Month     string // active month key, "2006-01"
	Settings  Settings
	MonthData MonthData
	Deals     Deals
	FX        Snapshot
}

// Totals is the aggregated monthly report consumed by rendering and export.
// All values are in the reference currency.
type Totals struct {
	Shifts   float64
	Received float64
	Paid     float64
	Fixed    float64
	Variable float64
	Income   float64
	Expenses float64
	Balance  float64
	Sent     float64
	Diff     float64
}

// DefaultSettings returns the initial settings for a fresh install.
func DefaultSettings() Settings {
	return Settings{
		OvertimeMult: 1.25,
		Autosave:     true,
		ANormal:      8,
		AExtra:       3,
		BNormal:      7,
		BExtra:       4,
		DayScale:     1,
	}
}

// DefaultMonthData returns a fresh month record with the seed expense rows.
func DefaultMonthData() MonthData {
	return MonthData{
		Fixed:    []ExpenseRow{NewExpenseRow("Rent")},
		Variable: []ExpenseRow{NewExpenseRow("Groceries")},
	}
}

// DefaultState returns a complete fresh state for the current month.
func DefaultState() *State {
	return &State{
		Month:     CurrentMonthKey(),
		Settings:  DefaultSettings(),
		MonthData: DefaultMonthData(),
	}
}

// CurrentMonthKey returns the month key for today, e.g. "2026-08".
func CurrentMonthKey() string {
	return time.Now().Format("2006-01")
}

// TodayISO returns today's date as "2006-01-02".
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}

// MonthOf extracts the year-month prefix of an ISO date string.
func MonthOf(dateISO string) string {
	if len(dateISO) < 7 {
		return ""
	}
	return dateISO[:7]
}
