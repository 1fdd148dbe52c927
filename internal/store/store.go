// Package store provides the SQLite-backed persistence for settings,
// per-month data, deals, and cached FX snapshots. Loads return complete
// records or a miss (callers fall back to defaults); writes are
// transactional, whole snapshot or nothing.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/kakeibo/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the sqlite database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant database location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "kakeibo", "kakeibo.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "kakeibo", "kakeibo.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadSettings reads the global settings row and the active month key.
// ok is false when nothing has been saved yet.
func (s *Store) LoadSettings() (model.Settings, string, bool, error) {
	var set model.Settings
	var month string
	var autosave int

	err := s.db.QueryRow(`SELECT name, company, range_text, hour_value, overtime_mult,
		autosave, a_normal, a_extra, b_normal, b_extra, day_scale, active_month
		FROM settings WHERE id = 1`).Scan(
		&set.Name, &set.Company, &set.RangeText, &set.HourValue, &set.OvertimeMult,
		&autosave, &set.ANormal, &set.AExtra, &set.BNormal, &set.BExtra,
		&set.DayScale, &month,
	)
	if err == sql.ErrNoRows {
		return model.Settings{}, "", false, nil
	}
	if err != nil {
		return model.Settings{}, "", false, err
	}

	set.Autosave = autosave != 0
	return set, month, true, nil
}

// SaveSettings writes the global settings row and the active month key.
func (s *Store) SaveSettings(set model.Settings, activeMonth string) error {
	autosave := 0
	if set.Autosave {
		autosave = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings
		(id, name, company, range_text, hour_value, overtime_mult,
		 autosave, a_normal, a_extra, b_normal, b_extra, day_scale, active_month)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		set.Name, set.Company, set.RangeText, set.HourValue, set.OvertimeMult,
		autosave, set.ANormal, set.AExtra, set.BNormal, set.BExtra,
		set.DayScale, activeMonth,
	)
	return err
}

// LoadMonth reads one month's record with its expense rows. ok is false
// when the month has never been saved.
func (s *Store) LoadMonth(monthKey string) (model.MonthData, bool, error) {
	var md model.MonthData

	err := s.db.QueryRow(`SELECT days_a, days_b, bonus_jpy, sent_jpy, saved_jpy
		FROM months WHERE month = ?`, monthKey).Scan(
		&md.DaysA, &md.DaysB, &md.BonusJPY, &md.SentJPY, &md.SavedJPY,
	)
	if err == sql.ErrNoRows {
		return model.MonthData{}, false, nil
	}
	if err != nil {
		return model.MonthData{}, false, err
	}

	rows, err := s.db.Query(`SELECT id, kind, descr, monthly, use_daily, day_values
		FROM expense_rows WHERE month = ? ORDER BY kind, position`, monthKey)
	if err != nil {
		return model.MonthData{}, false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var r model.ExpenseRow
		var kind string
		var useDaily int
		var dayJSON string
		if err := rows.Scan(&r.ID, &kind, &r.Desc, &r.Monthly, &useDaily, &dayJSON); err != nil {
			return model.MonthData{}, false, err
		}
		r.UseDaily = useDaily != 0
		if err := json.Unmarshal([]byte(dayJSON), &r.Values); err != nil {
			r.Values = nil // Normalize pads it back to a full day array
		}

		if model.ExpenseKind(kind) == model.ExpenseFixed {
			md.Fixed = append(md.Fixed, r)
		} else {
			md.Variable = append(md.Variable, r)
		}
	}
	if err := rows.Err(); err != nil {
		return model.MonthData{}, false, err
	}

	return md, true, nil
}

// SaveMonth writes a month's record and replaces its expense rows in one
// transaction.
func (s *Store) SaveMonth(monthKey string, md model.MonthData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO months
		(month, days_a, days_b, bonus_jpy, sent_jpy, saved_jpy, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		monthKey, md.DaysA, md.DaysB, md.BonusJPY, md.SentJPY, md.SavedJPY, now,
	)
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM expense_rows WHERE month = ?", monthKey); err != nil {
		return err
	}

	insert := func(kind model.ExpenseKind, rows []model.ExpenseRow) error {
		for i, r := range rows {
			dayJSON, err := json.Marshal(r.Values)
			if err != nil {
				return err
			}
			useDaily := 0
			if r.UseDaily {
				useDaily = 1
			}
			_, err = tx.Exec(`INSERT INTO expense_rows
				(id, month, kind, descr, monthly, use_daily, day_values, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				r.ID, monthKey, string(kind), r.Desc, r.Monthly, useDaily, string(dayJSON), i,
			)
			if err != nil {
				return err
			}
		}
		return nil
	}

	if err := insert(model.ExpenseFixed, md.Fixed); err != nil {
		return err
	}
	if err := insert(model.ExpenseVariable, md.Variable); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteMonth removes a month's record and expense rows (the explicit
// clear-month action).
func (s *Store) DeleteMonth(monthKey string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM expense_rows WHERE month = ?", monthKey); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM months WHERE month = ?", monthKey); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadDeals reads both deal ledgers with their payments.
func (s *Store) LoadDeals() (model.Deals, error) {
	var deals model.Deals

	rows, err := s.db.Query(`SELECT id, kind, title, person, currency, total, created_at
		FROM deals ORDER BY position, created_at`)
	if err != nil {
		return deals, err
	}
	defer func() { _ = rows.Close() }()

	index := make(map[string]*model.Deal)
	var order []struct {
		id   string
		kind model.DealKind
	}

	for rows.Next() {
		var d model.Deal
		var kind, currency string
		if err := rows.Scan(&d.ID, &kind, &d.Title, &d.Person, &currency, &d.Total, &d.CreatedAt); err != nil {
			return model.Deals{}, err
		}
		d.Currency = model.NormalizeCurrency(currency)
		index[d.ID] = &d
		order = append(order, struct {
			id   string
			kind model.DealKind
		}{d.ID, model.DealKind(kind)})
	}
	if err := rows.Err(); err != nil {
		return model.Deals{}, err
	}

	payRows, err := s.db.Query(`SELECT id, deal_id, date, amount FROM payments ORDER BY date, id`)
	if err != nil {
		return model.Deals{}, err
	}
	defer func() { _ = payRows.Close() }()

	for payRows.Next() {
		var p model.Payment
		var dealID string
		if err := payRows.Scan(&p.ID, &dealID, &p.Date, &p.Amount); err != nil {
			return model.Deals{}, err
		}
		if d, ok := index[dealID]; ok {
			d.Payments = append(d.Payments, p)
		}
	}
	if err := payRows.Err(); err != nil {
		return model.Deals{}, err
	}

	for _, o := range order {
		d := index[o.id]
		if o.kind == model.DealReceivable {
			deals.Receivable = append(deals.Receivable, *d)
		} else {
			deals.Payable = append(deals.Payable, *d)
		}
	}

	return deals, nil
}

// SaveDeal upserts one deal and replaces its payments in a transaction.
func (s *Store) SaveDeal(kind model.DealKind, d model.Deal, position int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT OR REPLACE INTO deals
		(id, kind, title, person, currency, total, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, string(kind), d.Title, d.Person, string(d.Currency), d.Total, d.CreatedAt, position,
	)
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM payments WHERE deal_id = ?", d.ID); err != nil {
		return err
	}
	for _, p := range d.Payments {
		_, err = tx.Exec(`INSERT INTO payments (id, deal_id, date, amount) VALUES (?, ?, ?, ?)`,
			p.ID, d.ID, p.Date, p.Amount,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteDeal removes a deal; payments cascade.
func (s *Store) DeleteDeal(id string) error {
	_, err := s.db.Exec("DELETE FROM deals WHERE id = ?", id)
	return err
}

// SaveFX caches a snapshot under its quote date. Incomplete snapshots are
// rejected so a cached entry always carries both rates.
func (s *Store) SaveFX(snap model.Snapshot) error {
	if !snap.Complete() {
		return fmt.Errorf("store: refusing to cache incomplete fx snapshot")
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO fx_rates (quote_date, brl, usd, fetched_at)
		VALUES (?, ?, ?, ?)`,
		snap.Date, *snap.BRL, *snap.USD, snap.FetchedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// LoadFX reads the cached snapshot for one quote date.
func (s *Store) LoadFX(date string) (model.Snapshot, bool, error) {
	return s.fxRow(`SELECT quote_date, brl, usd, fetched_at FROM fx_rates WHERE quote_date = ?`, date)
}

// LatestFX reads the freshest cached snapshot.
func (s *Store) LatestFX() (model.Snapshot, bool, error) {
	return s.fxRow(`SELECT quote_date, brl, usd, fetched_at FROM fx_rates ORDER BY quote_date DESC LIMIT 1`)
}

func (s *Store) fxRow(query string, args ...any) (model.Snapshot, bool, error) {
	var snap model.Snapshot
	var brl, usd float64
	var fetched string

	err := s.db.QueryRow(query, args...).Scan(&snap.Date, &brl, &usd, &fetched)
	if err == sql.ErrNoRows {
		return model.Snapshot{}, false, nil
	}
	if err != nil {
		return model.Snapshot{}, false, err
	}

	snap.Base = model.Reference
	snap.BRL = &brl
	snap.USD = &usd
	snap.FetchedAt, _ = time.Parse(time.RFC3339, fetched)
	return snap, true, nil
}

// LoadState assembles a complete state for the given month. Missing
// pieces fall back to defaults: absence of stored data is "use
// defaults", never an error. An empty monthKey selects the saved active
// month, or the current month.
func (s *Store) LoadState(monthKey string) (*model.State, error) {
	st := model.DefaultState()

	set, activeMonth, ok, err := s.LoadSettings()
	if err != nil {
		return nil, err
	}
	if ok {
		st.Settings = set
	}

	if monthKey == "" {
		monthKey = activeMonth
	}
	if monthKey == "" {
		monthKey = model.CurrentMonthKey()
	}
	st.Month = monthKey

	md, ok, err := s.LoadMonth(monthKey)
	if err != nil {
		return nil, err
	}
	if ok {
		st.MonthData = md
	} else {
		st.MonthData = model.DefaultMonthData()
	}

	deals, err := s.LoadDeals()
	if err != nil {
		return nil, err
	}
	st.Deals = deals

	snap, ok, err := s.LatestFX()
	if err != nil {
		return nil, err
	}
	if ok {
		st.FX = snap
	}

	model.Normalize(st)
	return st, nil
}

// SaveState persists settings (with the active month) and the active
// month's data. Deals are saved at mutation time via SaveDeal.
func (s *Store) SaveState(st *model.State) error {
	if err := s.SaveSettings(st.Settings, st.Month); err != nil {
		return err
	}
	return s.SaveMonth(st.Month, st.MonthData)
}

// SaveDeals rewrites both ledgers, preserving order.
func (s *Store) SaveDeals(deals model.Deals) error {
	for i, d := range deals.Receivable {
		if err := s.SaveDeal(model.DealReceivable, d, i); err != nil {
			return err
		}
	}
	for i, d := range deals.Payable {
		if err := s.SaveDeal(model.DealPayable, d, i); err != nil {
			return err
		}
	}
	return nil
}
