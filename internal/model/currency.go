package model

import "strings"

// Currency is one of the supported currency codes.
type Currency string

const (
	JPY Currency = "JPY"
	BRL Currency = "BRL"
	USD Currency = "USD"
)

// Reference is the currency all cross-currency totals are normalized into.
const Reference = JPY

// Currencies lists every supported currency, reference first.
var Currencies = []Currency{JPY, BRL, USD}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	switch c {
	case JPY, BRL, USD:
		return true
	}
	return false
}

// Label returns the display label with the currency symbol.
func (c Currency) Label() string {
	switch c {
	case JPY:
		return "JPY (¥)"
	case BRL:
		return "BRL (R$)"
	case USD:
		return "USD ($)"
	}
	return string(c)
}

// NormalizeCurrency maps an arbitrary code to a supported currency.
// Unknown codes fall back to the reference currency.
func NormalizeCurrency(code string) Currency {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if c.Valid() {
		return c
	}
	return Reference
}
