// Package fx converts supported currency amounts to the reference currency
// using a cached daily rate snapshot, and fetches fresh snapshots from the
// Frankfurter API.
package fx

import "github.com/theirongolddev/kakeibo/internal/model"

// Convert converts an amount in the given currency to the reference
// currency. The reference currency is an identity conversion. For any
// other currency, ok is false when the snapshot has no usable rate; a
// guessed rate is never substituted.
//
// Rates are quoted as "1 reference unit = rate currency units", so going
// currency -> reference divides by the rate.
func Convert(snap model.Snapshot, amount float64, from model.Currency) (float64, bool) {
	if from == model.Reference {
		return amount, true
	}
	rate, ok := snap.Rate(from)
	if !ok || rate == 0 {
		return 0, false
	}
	return amount / rate, true
}

// ToForeign converts a reference-currency amount into a non-reference
// currency, for displaying savings in BRL/USD. Multiplies by the rate,
// the inverse of Convert.
func ToForeign(snap model.Snapshot, refAmount float64, target model.Currency) (float64, bool) {
	if target == model.Reference {
		return refAmount, true
	}
	rate, ok := snap.Rate(target)
	if !ok {
		return 0, false
	}
	return refAmount * rate, true
}

// Missing reports whether the snapshot lacks a usable rate for the given
// currency, for UI warnings. The reference currency is never missing.
func Missing(snap model.Snapshot, c model.Currency) bool {
	if c == model.Reference {
		return false
	}
	_, ok := snap.Rate(c)
	return !ok
}
