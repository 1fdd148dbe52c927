// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/kakeibo/internal/model"
)

// FormatJPY formats a reference-currency amount: rounded to whole yen
// with thousands separators, e.g. 117500 -> "¥ 117,500".
func FormatJPY(v float64) string {
	return "¥ " + FormatNumber(int64(math.Round(v)))
}

// FormatMoney formats an amount in its own currency. JPY renders as whole
// yen; BRL and USD keep two decimals.
func FormatMoney(v float64, c model.Currency) string {
	switch c {
	case model.JPY:
		return FormatJPY(v)
	case model.BRL:
		return fmt.Sprintf("R$ %.2f", v)
	case model.USD:
		return fmt.Sprintf("$ %.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, c)
}

// FormatRate formats an FX quote to six decimals, or an em dash when the
// rate is unavailable.
func FormatRate(rate *float64) string {
	if rate == nil {
		return "—"
	}
	return strconv.FormatFloat(*rate, 'f', 6, 64)
}

// FormatSignedJPY is FormatJPY with an explicit sign, for balance deltas.
func FormatSignedJPY(v float64) string {
	if v < 0 {
		return "-" + FormatJPY(-v)
	}
	return "+" + FormatJPY(v)
}

// FormatNumber adds comma separators to an integer.
// e.g. 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercent renders a whole-number percentage, e.g. 42 -> "42%".
func FormatPercent(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// Dash substitutes an em dash for empty strings in display positions.
func Dash(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "—"
	}
	return s
}
