package model

import "time"

// Snapshot is the last successfully fetched pair of conversion rates plus
// its quote date. Rates are quoted as "1 reference unit = Rate currency
// units". A nil rate means conversion for that currency is unavailable.
type Snapshot struct {
	Base      Currency // always the reference currency
	BRL       *float64
	USD       *float64
	Date      string // quote date, ISO
	FetchedAt time.Time
}

// Rate returns the quoted rate for a non-reference currency.
func (s Snapshot) Rate(c Currency) (float64, bool) {
	switch c {
	case BRL:
		if s.BRL != nil {
			return *s.BRL, true
		}
	case USD:
		if s.USD != nil {
			return *s.USD, true
		}
	}
	return 0, false
}

// Complete reports whether both non-reference rates are present. Updates
// are atomic: a snapshot with only one rate is never stored.
func (s Snapshot) Complete() bool {
	return s.BRL != nil && s.USD != nil
}
