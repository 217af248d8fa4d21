package models

import (
	"strings"
)

// DocumentKind is the canonical document type a free-text label resolves to
// before dispatch. The string values are what the mobile app sends back when
// it asks for a regenerated document.
type DocumentKind string

const (
	KindQuotation        DocumentKind = "Quotation"
	KindInterimQuotation DocumentKind = "InterimQuotation"
	KindInvoice          DocumentKind = "Invoice"
	KindConfirmQuotation DocumentKind = "ConfirmQuotation"
	KindPayment          DocumentKind = "Payment"
	KindDefectsList      DocumentKind = "DefectsList"
	KindTechNotes        DocumentKind = "TechNotes"
)

// kindAliases maps the labels used by SMS rows and the mobile app to
// canonical kinds.
var kindAliases = map[string]DocumentKind{
	"quote":   KindQuotation,
	"interim": KindInterimQuotation,
	"invoice": KindInvoice,
	"confirm": KindConfirmQuotation,
	"payment": KindPayment,
	"defects": KindDefectsList,
	"notes":   KindTechNotes,
}

// ParseDocumentKind normalizes a free-text document label and resolves it to
// a canonical kind. The label is lower-cased, a trailing ".pdf" suffix is
// stripped, underscores and dashes become spaces and repeated whitespace is
// collapsed before the alias lookup. Unknown labels return ok == false.
func ParseDocumentKind(label string) (DocumentKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return "", false
	}
	normalized = strings.TrimSuffix(normalized, ".pdf")
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.Join(strings.Fields(normalized), " ")

	kind, ok := kindAliases[normalized]
	return kind, ok
}

// Title returns the heading printed at the top of the rendered document.
func (k DocumentKind) Title() string {
	switch k {
	case KindQuotation:
		return "Quotation"
	case KindInterimQuotation:
		return "Interim Quotation"
	case KindInvoice:
		return "Invoice"
	case KindConfirmQuotation:
		return "Confirm Quotation"
	case KindPayment:
		return "Payment Details"
	case KindDefectsList:
		return "Defects List"
	case KindTechNotes:
		return "Technician Notes"
	}
	return ""
}

// FileSuffix returns the per-kind suffix appended to the job card reference
// when naming the generated file.
func (k DocumentKind) FileSuffix() string {
	switch k {
	case KindQuotation:
		return "Quotation"
	case KindInterimQuotation:
		return "Interim Quote"
	case KindInvoice:
		return "Invoice"
	case KindConfirmQuotation:
		return "Confirm Quotation"
	case KindPayment:
		return "Payment Details"
	case KindDefectsList:
		return "Defects List"
	case KindTechNotes:
		return "Technician Notes"
	}
	return ""
}

// QuotationFamily reports whether the kind is an estimate-style document,
// which selects the estimate disclaimer instead of the payment notice.
func (k DocumentKind) QuotationFamily() bool {
	return k == KindQuotation || k == KindInterimQuotation
}

// NotesVariant selects which fixed notes block a document carries.
type NotesVariant string

const (
	NotesEstimate NotesVariant = "estimate"
	NotesPayment  NotesVariant = "payment"
	NotesNone     NotesVariant = "none"
)

// VehicleHeader holds the job card header fields repeated on every row of the
// per-kind queries. It is read from the first row.
type VehicleHeader struct {
	ClientName string `json:"client_name"`
	MakeModel  string `json:"make_model"`
	RegNo      string `json:"reg_no"`
	Date       string `json:"date"`
	ChassisNo  string `json:"chassis_no"`
	EngineCode string `json:"engine_code"`
	Mileage    string `json:"mileage"`
}

// NumberedEntry is one line of a defects list or technician notes document.
type NumberedEntry struct {
	No   int    `json:"no"`
	Text string `json:"text"`
}

// RenderableDocument is the fully assembled data for one document. It is
// built fresh per request and handed to the render step; nothing in it is
// persisted.
type RenderableDocument struct {
	Kind     DocumentKind   `json:"kind"`
	Title    string         `json:"title"`
	FileName string         `json:"file_name"`
	Header   VehicleHeader  `json:"header"`
	Lines    []LineItem     `json:"lines"`
	Totals   DocumentTotals `json:"totals"`
	Notes    NotesVariant   `json:"notes_variant"`

	// Payment documents only.
	Payments []PaymentLine `json:"payments,omitempty"`

	// Defects list and technician notes documents only.
	Entries      []NumberedEntry `json:"entries,omitempty"`
	Technician   string          `json:"technician,omitempty"`
	PreparedBy   string          `json:"prepared_by,omitempty"`
	SignaturePNG string          `json:"signature_png,omitempty"`
}
