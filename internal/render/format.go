package render

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a decimal with two fixed places and comma thousands
// separators, the way amounts appear on the printed documents.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]
	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}
	if neg {
		return "-" + intPart + frac
	}
	return intPart + frac
}

// amountCell renders a line-item amount or total. A zero amount means the
// price is still being sourced, which the documents print as a marker rather
// than a figure; an absent amount prints as a blank cell.
func amountCell(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	if d.IsZero() {
		return "TO BE CONFIRMED"
	}
	return FormatMoney(*d)
}

// paymentCell renders a payment-report figure, defaulting absent values to
// zero instead of a blank cell.
func paymentCell(d *decimal.Decimal) string {
	if d == nil {
		return "0.00"
	}
	return FormatMoney(*d)
}
