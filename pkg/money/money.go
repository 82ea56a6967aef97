// Package money provides fixed-point monetary values and the pt-BR
// parsing/formatting rules used throughout the document engine. All
// functions are pure; malformed input coerces to zero rather than
// returning an error so a half-filled form still renders.
package money

import (
	"strings"
)

// Cents is a monetary amount with two implied decimal places.
type Cents int64

// Parse converts a locale-formatted display string ("1.234,56", "R$ 90")
// into Cents. Everything except digits and commas is discarded and the
// first comma is taken as the decimal separator. Empty or unparseable
// input yields 0.
func Parse(display string) Cents {
	var b strings.Builder
	for _, r := range display {
		if r >= '0' && r <= '9' || r == ',' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return 0
	}

	intPart := clean
	fracPart := ""
	if i := strings.IndexByte(clean, ','); i >= 0 {
		intPart = clean[:i]
		fracPart = clean[i+1:]
		// A second comma ends the fractional part, as parseFloat would.
		if j := strings.IndexByte(fracPart, ','); j >= 0 {
			fracPart = fracPart[:j]
		}
	}

	var units int64
	for i := 0; i < len(intPart); i++ {
		units = units*10 + int64(intPart[i]-'0')
	}

	cents := units * 100
	switch {
	case len(fracPart) >= 2:
		cents += int64(fracPart[0]-'0')*10 + int64(fracPart[1]-'0')
	case len(fracPart) == 1:
		cents += int64(fracPart[0]-'0') * 10
	}
	return Cents(cents)
}

// FormatInput renders a run of typed digits as a grouped decimal, treating
// the input as a cents-denominated integer typed left to right: the last
// two digits are always the cents. Non-digits are ignored. Empty input
// formats to an empty string, not "0,00".
func FormatInput(rawDigits string) string {
	var digits strings.Builder
	for _, r := range rawDigits {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()
	if s == "" {
		return ""
	}

	var cents Cents
	for i := 0; i < len(s); i++ {
		cents = cents*10 + Cents(s[i]-'0')
	}
	return Format(cents)
}

// Format renders Cents as a pt-BR decimal: dot-grouped thousands and a
// comma before exactly two fraction digits ("1.234,56").
func Format(c Cents) string {
	neg := c < 0
	if neg {
		c = -c
	}

	units := int64(c) / 100
	frac := int64(c) % 100

	digits := []byte{}
	if units == 0 {
		digits = append(digits, '0')
	}
	for units > 0 {
		digits = append([]byte{byte('0' + units%10)}, digits...)
		units /= 10
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(d)
	}
	b.WriteByte(',')
	b.WriteByte(byte('0' + frac/10))
	b.WriteByte(byte('0' + frac%10))
	return b.String()
}

// FormatBRL is Format with the currency prefix templates expect.
func FormatBRL(c Cents) string {
	return "R$ " + Format(c)
}
