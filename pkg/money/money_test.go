package money_test

import (
	"testing"

	"github.com/advocflow/docgen/pkg/money"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		display string
		want    money.Cents
	}{
		{"grouped decimal", "1.234,56", 123456},
		{"currency prefix", "R$ 200,00", 20000},
		{"bare integer", "1200", 120000},
		{"single fraction digit", "12,5", 1250},
		{"long fraction truncated", "12,567", 1256},
		{"second comma ends fraction", "12,34,56", 1234},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"lone comma", ",", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := money.Parse(tc.display); got != tc.want {
				t.Fatalf("Parse(%q) = %d, want %d", tc.display, got, tc.want)
			}
		})
	}
}

func TestFormatInput(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"1", "0,01"},
		{"12", "0,12"},
		{"123", "1,23"},
		{"120000", "1.200,00"},
		{"R$ 1.200,00", "1.200,00"},
	}

	for _, tc := range cases {
		if got := money.FormatInput(tc.raw); got != tc.want {
			t.Errorf("FormatInput(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		cents money.Cents
		want  string
	}{
		{0, "0,00"},
		{5, "0,05"},
		{20000, "200,00"},
		{123456, "1.234,56"},
		{100000000, "1.000.000,00"},
		{-1250, "-12,50"},
	}

	for _, tc := range cases {
		if got := money.Format(tc.cents); got != tc.want {
			t.Errorf("Format(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

// Formatting then parsing then formatting again must be stable for any
// non-negative amount; the engine relies on this when re-deriving
// installment values from display strings.
func TestRoundTrip(t *testing.T) {
	for _, c := range []money.Cents{0, 1, 99, 100, 20000, 123456, 999999999} {
		display := money.Format(c)
		if got := money.Format(money.Parse(display)); got != display {
			t.Fatalf("round trip of %d: got %q, want %q", c, got, display)
		}
	}
}
