package cli

import (
	"testing"

	"github.com/theirongolddev/kakeibo/internal/model"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{117500, "117,500"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatJPYRounds(t *testing.T) {
	if got := FormatJPY(117500.4); got != "¥ 117,500" {
		t.Fatalf("FormatJPY = %q", got)
	}
	if got := FormatJPY(999.5); got != "¥ 1,000" {
		t.Fatalf("FormatJPY = %q", got)
	}
}

func TestFormatMoneyPerCurrency(t *testing.T) {
	if got := FormatMoney(80000, model.JPY); got != "¥ 80,000" {
		t.Fatalf("JPY = %q", got)
	}
	if got := FormatMoney(123.456, model.BRL); got != "R$ 123.46" {
		t.Fatalf("BRL = %q", got)
	}
	if got := FormatMoney(9.1, model.USD); got != "$ 9.10" {
		t.Fatalf("USD = %q", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(nil); got != "—" {
		t.Fatalf("nil rate = %q", got)
	}
	r := 0.0067
	if got := FormatRate(&r); got != "0.006700" {
		t.Fatalf("rate = %q", got)
	}
}

func TestFormatSignedJPY(t *testing.T) {
	if got := FormatSignedJPY(2500); got != "+¥ 2,500" {
		t.Fatalf("positive = %q", got)
	}
	if got := FormatSignedJPY(-2500); got != "-¥ 2,500" {
		t.Fatalf("negative = %q", got)
	}
}

func TestDash(t *testing.T) {
	if got := Dash("  "); got != "—" {
		t.Fatalf("blank = %q", got)
	}
	if got := Dash("Ana"); got != "Ana" {
		t.Fatalf("name = %q", got)
	}
}
