package services

import (
	"bytes"
	"log"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
		none bool
	}{
		{name: "nil", in: nil, none: true},
		{name: "int", in: 7, want: "7"},
		{name: "int64", in: int64(42), want: "42"},
		{name: "float", in: 1234.5, want: "1234.5"},
		{name: "decimal", in: decimal.RequireFromString("9.99"), want: "9.99"},
		{name: "plain string", in: "250.75", want: "250.75"},
		{name: "string with separators", in: "1,234.50", want: "1234.5"},
		{name: "bytes", in: []byte("88.25"), want: "88.25"},
		{name: "garbage string", in: "abc", none: true},
		{name: "unsupported type", in: true, none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceAmount(tt.in, nil)
			if tt.none {
				if got != nil {
					t.Fatalf("expected nil, got %s", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a value, got nil")
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCoerceAmountLogsBadStrings(t *testing.T) {
	var buf bytes.Buffer
	warnLog := log.New(&buf, "", 0)

	if got := CoerceAmount("not-a-number", warnLog); got != nil {
		t.Fatalf("expected nil, got %s", got)
	}
	if !bytes.Contains(buf.Bytes(), []byte("not-a-number")) {
		t.Errorf("expected the bad value in the log, got %q", buf.String())
	}
}

func TestDisplayQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "int", in: 3, want: "3"},
		{name: "int64", in: int64(12), want: "12"},
		{name: "float", in: 2.5, want: "2.5"},
		{name: "decimal", in: decimal.RequireFromString("4"), want: "4"},
		{name: "text stays blank", in: "2", want: ""},
		{name: "bytes stay blank", in: []byte("2"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayQuantity(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
