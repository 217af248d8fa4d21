package models

import (
	"github.com/shopspring/decimal"
)

// LineItem is one billable or quoted entry of a document. Quantity, UnitAmount
// and LineTotal are nil when the stored value was missing or not numeric;
// absence is distinct from zero. A LineItem is not modified after it is built
// from a query row.
type LineItem struct {
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	DisplayQty  string           `json:"display_quantity"`
	UnitAmount  *decimal.Decimal `json:"unit_amount,omitempty"`
	LineTotal   *decimal.Decimal `json:"line_total,omitempty"`
	JobID       int              `json:"job_id"`
}

// DocumentTotals carries the derived financial summary of a document.
// GrandTotal is always Subtotal + PreviousBalance.
type DocumentTotals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
}

// PaymentLine is one row of the payment details report. Monetary fields are
// nil when the stored value was missing.
type PaymentLine struct {
	No         int              `json:"no"`
	Date       string           `json:"date"`
	JobCardRef string           `json:"jobcard_ref"`
	Mode       string           `json:"mode"`
	Invoiced   *decimal.Decimal `json:"invoiced,omitempty"`
	Paid       *decimal.Decimal `json:"paid,omitempty"`
	Discount   *decimal.Decimal `json:"discount,omitempty"`
	Balance    *decimal.Decimal `json:"balance,omitempty"`
}

// ItemRow is the store-boundary record for one row of the quotation,
// quotation-feedback or invoice queries. Quantity and Amount keep the
// driver-native value because the underlying columns hold a mix of numeric
// and legacy text data; coercion happens in the service layer.
type ItemRow struct {
	Fullname     string
	MakeAndModel string
	RegNo        string
	Date         string
	ChassisNo    string
	EngineCode   string
	Mileage      string
	Item         string
	Quantity     any
	Amount       any
	AssignedJob  int
}

// PaymentRow is the store-boundary record for one row of the payments query.
type PaymentRow struct {
	Date       string
	JobCardRef string
	Mode       string
	Invoiced   any
	Paid       any
	Discount   any
	Balance    any
}

// JobNotesRow is the store-boundary record for the defects list and
// technician notes queries. RawText is the free-text field before markup
// stripping; Signature is the raw blob from the store, empty for notes.
type JobNotesRow struct {
	ClientName     string
	RegNo          string
	MakeAndModel   string
	EngineCode     string
	ChassisNo      string
	ReceivedDate   string
	TechnicianName string
	RawText        string
	PreparedBy     string
	Signature      []byte
}
