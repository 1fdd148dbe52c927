package model

import "github.com/google/uuid"

// DealKind separates money owed to the user from money the user owes.
type DealKind string

const (
	DealReceivable DealKind = "receivable"
	DealPayable    DealKind = "payable"
)

// Valid reports whether k is a known deal kind.
func (k DealKind) Valid() bool {
	return k == DealReceivable || k == DealPayable
}

// Deal is a receivable or payable agreement with a total amount in its own
// currency and a stream of partial payments.
type Deal struct {
	ID        string
	Title     string
	Person    string
	Currency  Currency
	Total     float64 // in the deal's currency
	CreatedAt string  // ISO date
	Payments  []Payment
}

// Payment is one partial payment against a deal, in the deal's currency.
// Amounts are clamped to the remaining balance at entry time, so they are
// never negative by construction.
type Payment struct {
	ID     string
	Date   string // ISO date
	Amount float64
}

// NewID returns a fresh unique id for rows, deals, and payments.
func NewID() string {
	return uuid.NewString()
}
