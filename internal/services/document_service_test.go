package services

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"bmaBack/internal/models"
)

type fakeDocumentStore struct {
	ref           string
	refErr        error
	quotation     []models.ItemRow
	feedback      []models.ItemRow
	invoice       []models.ItemRow
	payments      []models.PaymentRow
	defects       models.JobNotesRow
	defectsErr    error
	techNotes     models.JobNotesRow
	techNotesErr  error
}

func (f *fakeDocumentStore) JobCardRef(ctx context.Context, jobID int) (string, error) {
	if f.refErr != nil {
		return "", f.refErr
	}
	return f.ref, nil
}

func (f *fakeDocumentStore) QuotationItems(ctx context.Context, jobID int) ([]models.ItemRow, error) {
	return f.quotation, nil
}

func (f *fakeDocumentStore) QuotationFeedbackItems(ctx context.Context, jobID int) ([]models.ItemRow, error) {
	return f.feedback, nil
}

func (f *fakeDocumentStore) InvoiceItems(ctx context.Context, jobID int) ([]models.ItemRow, error) {
	return f.invoice, nil
}

func (f *fakeDocumentStore) Payments(ctx context.Context, jobID int) ([]models.PaymentRow, error) {
	return f.payments, nil
}

func (f *fakeDocumentStore) DefectsDetails(ctx context.Context, jobID int) (models.JobNotesRow, error) {
	return f.defects, f.defectsErr
}

func (f *fakeDocumentStore) TechNotesDetails(ctx context.Context, jobID int) (models.JobNotesRow, error) {
	return f.techNotes, f.techNotesErr
}

func newTestDocumentService(store DocumentStore) *DocumentService {
	return &DocumentService{Store: store, ErrorLog: log.New(io.Discard, "", 0)}
}

func itemRow(item string, qty, amount any) models.ItemRow {
	return models.ItemRow{
		Fullname:     "John Kamau",
		MakeAndModel: "BMW X5",
		RegNo:        "KDA 123A",
		Date:         "2024-03-08",
		ChassisNo:    "WBA12345",
		EngineCode:   "N57",
		Mileage:      "120000",
		Item:         item,
		Quantity:     qty,
		Amount:       amount,
	}
}

func TestBuildDocumentQuotationTotals(t *testing.T) {
	store := &fakeDocumentStore{
		ref: "JC-1042",
		quotation: []models.ItemRow{
			itemRow("Brake pads", 2.0, 150.0),
			itemRow("Labour", nil, 700.0),
		},
	}
	svc := newTestDocumentService(store)

	doc, err := svc.BuildDocument(context.Background(), 1042, models.KindQuotation)
	if err != nil {
		t.Fatal(err)
	}

	if doc.FileName != "JC-1042 Quotation" {
		t.Errorf("file name = %q", doc.FileName)
	}
	if doc.Header.ClientName != "John Kamau" {
		t.Errorf("header client = %q", doc.Header.ClientName)
	}
	if len(doc.Lines) != 2 {
		t.Fatalf("got %d lines", len(doc.Lines))
	}
	// 2 * 150 billed alongside the quantity-free labour line.
	if got := doc.Lines[0].LineTotal.String(); got != "300" {
		t.Errorf("line 0 total = %s", got)
	}
	if got := doc.Lines[1].LineTotal.String(); got != "700" {
		t.Errorf("line 1 total = %s", got)
	}
	if got := doc.Totals.Subtotal.String(); got != "1000" {
		t.Errorf("subtotal = %s", got)
	}
	if !doc.Totals.PreviousBalance.IsZero() {
		t.Errorf("previous balance = %s", doc.Totals.PreviousBalance)
	}
	if got := doc.Totals.GrandTotal.String(); got != "1000" {
		t.Errorf("grand total = %s", got)
	}
	if doc.Notes != models.NotesEstimate {
		t.Errorf("notes = %q", doc.Notes)
	}
}

func TestBuildDocumentPreviousBalance(t *testing.T) {
	store := &fakeDocumentStore{
		ref: "JC-7",
		invoice: []models.ItemRow{
			itemRow("Brake pads", 2.0, 150.0),
			itemRow("Labour", nil, 700.0),
			itemRow("Previous Balance", nil, 500.0),
		},
	}
	svc := newTestDocumentService(store)

	doc, err := svc.BuildDocument(context.Background(), 7, models.KindInvoice)
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Lines) != 2 {
		t.Fatalf("carry-over row should not render, got %d lines", len(doc.Lines))
	}
	for _, line := range doc.Lines {
		if line.Description == "Previous Balance" {
			t.Error("carry-over row left in the rendered lines")
		}
	}
	if got := doc.Totals.Subtotal.String(); got != "1000" {
		t.Errorf("subtotal = %s", got)
	}
	if got := doc.Totals.PreviousBalance.String(); got != "500" {
		t.Errorf("previous balance = %s", got)
	}
	if got := doc.Totals.GrandTotal.String(); got != "1500" {
		t.Errorf("grand total = %s", got)
	}
	if doc.Notes != models.NotesPayment {
		t.Errorf("notes = %q", doc.Notes)
	}
}

func TestBuildDocumentSentinelIsCaseSensitive(t *testing.T) {
	store := &fakeDocumentStore{
		ref: "JC-8",
		invoice: []models.ItemRow{
			itemRow("previous balance", nil, 500.0),
			itemRow("Labour", nil, 700.0),
		},
	}
	svc := newTestDocumentService(store)

	doc, err := svc.BuildDocument(context.Background(), 8, models.KindInvoice)
	if err != nil {
		t.Fatal(err)
	}

	// Differently cased rows bill like ordinary line items.
	if len(doc.Lines) != 2 {
		t.Fatalf("got %d lines", len(doc.Lines))
	}
	if got := doc.Totals.Subtotal.String(); got != "1200" {
		t.Errorf("subtotal = %s", got)
	}
	if !doc.Totals.PreviousBalance.IsZero() {
		t.Errorf("previous balance = %s", doc.Totals.PreviousBalance)
	}
}

func TestBuildDocumentRoundsLineTotals(t *testing.T) {
	store := &fakeDocumentStore{
		ref: "JC-9",
		quotation: []models.ItemRow{
			itemRow("Gasket", 3.0, 33.333),
		},
	}
	svc := newTestDocumentService(store)

	doc, err := svc.BuildDocument(context.Background(), 9, models.KindQuotation)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Lines[0].LineTotal.String(); got != "100" {
		t.Errorf("line total = %s, want 100", got)
	}
}

func TestBuildDocumentEmpty(t *testing.T) {
	store := &fakeDocumentStore{ref: "JC-1"}
	svc := newTestDocumentService(store)

	_, err := svc.BuildDocument(context.Background(), 1, models.KindQuotation)
	if !errors.Is(err, models.ErrEmptyDocument) {
		t.Errorf("got %v, want ErrEmptyDocument", err)
	}
}

func TestBuildDocumentUnknownKind(t *testing.T) {
	store := &fakeDocumentStore{ref: "JC-1"}
	svc := newTestDocumentService(store)

	_, err := svc.BuildDocument(context.Background(), 1, models.DocumentKind("receipt"))
	if !errors.Is(err, models.ErrUnsupportedDocumentKind) {
		t.Errorf("got %v, want ErrUnsupportedDocumentKind", err)
	}
}

func TestBuildDocumentUnknownJobCard(t *testing.T) {
	store := &fakeDocumentStore{refErr: models.ErrJobCardNotFound}
	svc := newTestDocumentService(store)

	_, err := svc.BuildDocument(context.Background(), 99, models.KindQuotation)
	if !errors.Is(err, models.ErrJobCardNotFound) {
		t.Errorf("got %v, want ErrJobCardNotFound", err)
	}
}

func TestBuildDocumentPayment(t *testing.T) {
	store := &fakeDocumentStore{
		ref:     "JC-20",
		invoice: []models.ItemRow{itemRow("Labour", nil, 700.0)},
		payments: []models.PaymentRow{
			{Date: "2024-02-01", JobCardRef: "JC-20", Mode: "M-Pesa", Invoiced: 700.0, Paid: 500.0, Discount: nil, Balance: 200.0},
		},
	}
	svc := newTestDocumentService(store)

	doc, err := svc.BuildDocument(context.Background(), 20, models.KindPayment)
	if err != nil {
		t.Fatal(err)
	}

	if doc.FileName != "JC-20 Payment Details" {
		t.Errorf("file name = %q", doc.FileName)
	}
	if doc.Header.ClientName != "John Kamau" {
		t.Errorf("header should come from the invoice rows, got %q", doc.Header.ClientName)
	}
	if len(doc.Payments) != 1 {
		t.Fatalf("got %d payment lines", len(doc.Payments))
	}
	p := doc.Payments[0]
	if p.No != 1 || p.Mode != "M-Pesa" {
		t.Errorf("payment line = %+v", p)
	}
	if p.Paid.String() != "500" {
		t.Errorf("paid = %s", p.Paid)
	}
	if p.Discount != nil {
		t.Errorf("discount should be absent, got %s", p.Discount)
	}
	if doc.Notes != models.NotesNone {
		t.Errorf("notes = %q", doc.Notes)
	}
}

func TestBuildDocumentPaymentNeedsInvoice(t *testing.T) {
	store := &fakeDocumentStore{ref: "JC-21"}
	svc := newTestDocumentService(store)

	_, err := svc.BuildDocument(context.Background(), 21, models.KindPayment)
	if !errors.Is(err, models.ErrEmptyDocument) {
		t.Errorf("got %v, want ErrEmptyDocument", err)
	}
}

func TestBuildDocumentDefects(t *testing.T) {
	store := &fakeDocumentStore{
		ref: "JC-30",
		defects: models.JobNotesRow{
			ClientName:   "Jane Njeri",
			MakeAndModel: "BMW 320i",
			RegNo:        "KCB 88B",
			ChassisNo:    "WBA999",
			EngineCode:   "B48",
			ReceivedDate: "2024-01-15",
			RawText:      "<div>Oil leak</div><div>Brake wear</div>",
			PreparedBy:   "D. Otieno",
			Signature:    []byte{0x89, 0x50, 0x4e, 0x47},
		},
	}
	svc := newTestDocumentService(store)

	doc, err := svc.BuildDocument(context.Background(), 30, models.KindDefectsList)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Title != "Defects List" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Entries) != 2 {
		t.Fatalf("got %d entries", len(doc.Entries))
	}
	if doc.Entries[0].Text != "Oil leak" || doc.Entries[1].Text != "Brake wear" {
		t.Errorf("entries = %+v", doc.Entries)
	}
	if doc.PreparedBy != "D. Otieno" {
		t.Errorf("prepared by = %q", doc.PreparedBy)
	}
	if doc.SignaturePNG == "" {
		t.Error("signature should be carried as base64")
	}
}

func TestBuildDocumentTechNotes(t *testing.T) {
	store := &fakeDocumentStore{
		ref: "JC-31",
		techNotes: models.JobNotesRow{
			ClientName:     "Jane Njeri",
			TechnicianName: "S. Mwangi",
			RawText:        "Replaced thermostat\nBled cooling system",
		},
	}
	svc := newTestDocumentService(store)

	doc, err := svc.BuildDocument(context.Background(), 31, models.KindTechNotes)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Technician Notes" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Technician != "S. Mwangi" {
		t.Errorf("technician = %q", doc.Technician)
	}
	if len(doc.Entries) != 2 {
		t.Fatalf("got %d entries", len(doc.Entries))
	}
	if doc.SignaturePNG != "" {
		t.Errorf("unexpected signature %q", doc.SignaturePNG)
	}
}
