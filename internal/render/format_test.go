package render

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"999.9", "999.90"},
		{"1000", "1,000.00"},
		{"1234567.891", "1,234,567.89"},
		{"-1234.5", "-1,234.50"},
	}

	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		if got := FormatMoney(d); got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAmountCell(t *testing.T) {
	if got := amountCell(nil); got != "" {
		t.Errorf("nil amount = %q", got)
	}

	zero := decimal.Zero
	if got := amountCell(&zero); got != "TO BE CONFIRMED" {
		t.Errorf("zero amount = %q", got)
	}

	d := decimal.RequireFromString("1500")
	if got := amountCell(&d); got != "1,500.00" {
		t.Errorf("amount = %q", got)
	}
}

func TestPaymentCell(t *testing.T) {
	if got := paymentCell(nil); got != "0.00" {
		t.Errorf("nil figure = %q", got)
	}

	d := decimal.RequireFromString("250.5")
	if got := paymentCell(&d); got != "250.50" {
		t.Errorf("figure = %q", got)
	}
}
