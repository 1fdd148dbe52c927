// Package ledger tracks receivable and payable deals and their partial
// payments. All queries are pure functions over the deal data; mutations
// validate and clamp before touching anything.
package ledger

import (
	"errors"
	"strings"

	"github.com/theirongolddev/kakeibo/internal/fx"
	"github.com/theirongolddev/kakeibo/internal/model"
)

// ErrPaymentNotFound marks a removal targeting an unknown payment id.
var ErrPaymentNotFound = errors.New("ledger: payment not found")

// PaidTotal sums every payment of the deal, in the deal's own currency.
func PaidTotal(d model.Deal) float64 {
	var total float64
	for _, p := range d.Payments {
		total += p.Amount
	}
	return total
}

// Remaining returns the unpaid balance in the deal's own currency,
// never negative.
func Remaining(d model.Deal) float64 {
	rem := d.Total - PaidTotal(d)
	if rem < 0 {
		return 0
	}
	return rem
}

// Progress returns the paid share of the total as 0-100, capped at 100.
func Progress(d model.Deal) int {
	if d.Total <= 0 {
		return 0
	}
	pct := int(PaidTotal(d)/d.Total*100 + 0.5)
	if pct > 100 {
		return 100
	}
	return pct
}

// RemainingInReference converts the remaining balance to the reference
// currency. ok is false when the snapshot has no rate for the deal's
// currency.
func RemainingInReference(d model.Deal, snap model.Snapshot) (float64, bool) {
	return fx.Convert(snap, Remaining(d), d.Currency)
}

// PaymentsInMonth sums the deal's payments dated in the given month,
// converted to the reference currency. A payment whose conversion is
// unavailable is excluded from the sum rather than failing the total;
// a missing rate under-reports that day's contribution but never blocks
// the month's balance.
func PaymentsInMonth(d model.Deal, monthKey string, snap model.Snapshot) float64 {
	var total float64
	for _, p := range d.Payments {
		if model.MonthOf(p.Date) != monthKey {
			continue
		}
		ref, ok := fx.Convert(snap, p.Amount, d.Currency)
		if !ok {
			continue
		}
		total += ref
	}
	return total
}

// MonthFlow sums the month's converted payments across both ledgers.
// Returned values are in the reference currency.
func MonthFlow(deals model.Deals, monthKey string, snap model.Snapshot) (received, paid float64) {
	for _, d := range deals.Receivable {
		received += PaymentsInMonth(d, monthKey, snap)
	}
	for _, d := range deals.Payable {
		paid += PaymentsInMonth(d, monthKey, snap)
	}
	return received, paid
}

// RemainingTotals sums each ledger's remaining balances in the reference
// currency. Deals without a usable rate contribute zero.
func RemainingTotals(deals model.Deals, snap model.Snapshot) (receivable, payable float64) {
	for _, d := range deals.Receivable {
		if ref, ok := RemainingInReference(d, snap); ok {
			receivable += ref
		}
	}
	for _, d := range deals.Payable {
		if ref, ok := RemainingInReference(d, snap); ok {
			payable += ref
		}
	}
	return receivable, payable
}

// NewDeal builds a validated deal from fully-formed input. Unknown
// currency codes are normalized to the reference currency; a non-positive
// total is rejected.
func NewDeal(title, person, currencyCode string, total float64) (model.Deal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Deal{}, model.ErrEmptyTitle
	}
	if total <= 0 {
		return model.Deal{}, model.ErrInvalidAmount
	}
	return model.Deal{
		ID:        model.NewID(),
		Title:     title,
		Person:    strings.TrimSpace(person),
		Currency:  model.NormalizeCurrency(currencyCode),
		Total:     total,
		CreatedAt: model.TodayISO(),
	}, nil
}

// AddPayment records a payment against the deal. The amount must be
// strictly positive and is clamped to the current remaining balance, so a
// deal can never be paid past its agreed total. Returns the recorded
// payment.
func AddPayment(d *model.Deal, date string, amount float64) (model.Payment, error) {
	if amount <= 0 {
		return model.Payment{}, model.ErrInvalidAmount
	}
	if date == "" {
		date = model.TodayISO()
	}
	rem := Remaining(*d)
	if amount > rem {
		amount = rem
	}
	p := model.Payment{
		ID:     model.NewID(),
		Date:   date,
		Amount: amount,
	}
	d.Payments = append(d.Payments, p)
	return p, nil
}

// RemovePayment deletes a payment by id. Confirmation is the caller's
// concern; the ledger just mutates.
func RemovePayment(d *model.Deal, paymentID string) error {
	for i, p := range d.Payments {
		if p.ID == paymentID {
			d.Payments = append(d.Payments[:i], d.Payments[i+1:]...)
			return nil
		}
	}
	return ErrPaymentNotFound
}

// FindDeal locates a deal by id in either ledger. The returned pointer
// aliases the slice entry so mutations stick.
func FindDeal(deals *model.Deals, id string) (*model.Deal, model.DealKind, bool) {
	for i := range deals.Receivable {
		if deals.Receivable[i].ID == id {
			return &deals.Receivable[i], model.DealReceivable, true
		}
	}
	for i := range deals.Payable {
		if deals.Payable[i].ID == id {
			return &deals.Payable[i], model.DealPayable, true
		}
	}
	return nil, "", false
}
