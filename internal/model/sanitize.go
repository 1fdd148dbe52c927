package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount is the single numeric-coercion boundary for free numeric
// entry. It accepts a comma decimal separator and coerces anything
// unparseable (or non-finite) to 0 rather than returning an error.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// ClampDayScale bounds the UI display-scale factor to [0.9, 1.25].
// Zero or negative input resets to 1.
func ClampDayScale(s float64) float64 {
	if s <= 0 {
		s = 1
	}
	if s < 0.9 {
		return 0.9
	}
	if s > 1.25 {
		return 1.25
	}
	return s
}
