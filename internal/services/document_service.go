package services

import (
	"context"
	"encoding/base64"
	"log"

	"github.com/shopspring/decimal"

	"bmaBack/internal/models"
)

// previousBalanceSentinel marks the carry-over row keyed in by the office on
// the job card. The match is deliberately exact and case-sensitive: a row
// keyed with different casing or spacing is treated as an ordinary line item
// and billed into the subtotal.
const previousBalanceSentinel = "Previous Balance"

// DocumentStore is the read-only slice of the job-card database the document
// builder needs.
type DocumentStore interface {
	JobCardRef(ctx context.Context, jobID int) (string, error)
	QuotationItems(ctx context.Context, jobID int) ([]models.ItemRow, error)
	QuotationFeedbackItems(ctx context.Context, jobID int) ([]models.ItemRow, error)
	InvoiceItems(ctx context.Context, jobID int) ([]models.ItemRow, error)
	Payments(ctx context.Context, jobID int) ([]models.PaymentRow, error)
	DefectsDetails(ctx context.Context, jobID int) (models.JobNotesRow, error)
	TechNotesDetails(ctx context.Context, jobID int) (models.JobNotesRow, error)
}

type DocumentService struct {
	Store    DocumentStore
	ErrorLog *log.Logger
}

// BuildDocument assembles the complete renderable document for one job card
// and canonical kind. It fails with models.ErrUnsupportedDocumentKind for a
// kind it does not know and with models.ErrEmptyDocument when the job has no
// line-item rows; a header-only document is never produced.
func (s *DocumentService) BuildDocument(ctx context.Context, jobID int, kind models.DocumentKind) (models.RenderableDocument, error) {
	ref, err := s.Store.JobCardRef(ctx, jobID)
	if err != nil {
		return models.RenderableDocument{}, err
	}

	doc := models.RenderableDocument{
		Kind:     kind,
		Title:    kind.Title(),
		FileName: ref + " " + kind.FileSuffix(),
	}

	switch kind {
	case models.KindQuotation, models.KindInterimQuotation:
		rows, err := s.Store.QuotationItems(ctx, jobID)
		if err != nil {
			return models.RenderableDocument{}, err
		}
		return s.itemDocument(doc, rows)
	case models.KindConfirmQuotation:
		rows, err := s.Store.QuotationFeedbackItems(ctx, jobID)
		if err != nil {
			return models.RenderableDocument{}, err
		}
		return s.itemDocument(doc, rows)
	case models.KindInvoice:
		rows, err := s.Store.InvoiceItems(ctx, jobID)
		if err != nil {
			return models.RenderableDocument{}, err
		}
		return s.itemDocument(doc, rows)
	case models.KindPayment:
		return s.paymentDocument(ctx, doc, jobID)
	case models.KindDefectsList:
		row, err := s.Store.DefectsDetails(ctx, jobID)
		if err != nil {
			return models.RenderableDocument{}, err
		}
		return s.notesDocument(doc, row), nil
	case models.KindTechNotes:
		row, err := s.Store.TechNotesDetails(ctx, jobID)
		if err != nil {
			return models.RenderableDocument{}, err
		}
		return s.notesDocument(doc, row), nil
	default:
		return models.RenderableDocument{}, models.ErrUnsupportedDocumentKind
	}
}

func (s *DocumentService) itemDocument(doc models.RenderableDocument, rows []models.ItemRow) (models.RenderableDocument, error) {
	if len(rows) == 0 {
		return models.RenderableDocument{}, models.ErrEmptyDocument
	}

	doc.Header = headerFromRow(rows[0])
	lines := s.normalizeRows(rows)
	doc.Lines, doc.Totals = aggregateTotals(lines)
	if doc.Kind.QuotationFamily() {
		doc.Notes = models.NotesEstimate
	} else {
		doc.Notes = models.NotesPayment
	}
	return doc, nil
}

func (s *DocumentService) paymentDocument(ctx context.Context, doc models.RenderableDocument, jobID int) (models.RenderableDocument, error) {
	// The payment report borrows its vehicle header from the invoice rows.
	invoiceRows, err := s.Store.InvoiceItems(ctx, jobID)
	if err != nil {
		return models.RenderableDocument{}, err
	}
	if len(invoiceRows) == 0 {
		return models.RenderableDocument{}, models.ErrEmptyDocument
	}
	doc.Header = headerFromRow(invoiceRows[0])

	rows, err := s.Store.Payments(ctx, jobID)
	if err != nil {
		return models.RenderableDocument{}, err
	}
	payments := make([]models.PaymentLine, 0, len(rows))
	for i, row := range rows {
		payments = append(payments, models.PaymentLine{
			No:         i + 1,
			Date:       row.Date,
			JobCardRef: row.JobCardRef,
			Mode:       row.Mode,
			Invoiced:   CoerceAmount(row.Invoiced, s.ErrorLog),
			Paid:       CoerceAmount(row.Paid, s.ErrorLog),
			Discount:   CoerceAmount(row.Discount, s.ErrorLog),
			Balance:    CoerceAmount(row.Balance, s.ErrorLog),
		})
	}
	doc.Payments = payments
	doc.Notes = models.NotesNone
	return doc, nil
}

func (s *DocumentService) notesDocument(doc models.RenderableDocument, row models.JobNotesRow) models.RenderableDocument {
	doc.Header = models.VehicleHeader{
		ClientName: row.ClientName,
		MakeModel:  row.MakeAndModel,
		RegNo:      row.RegNo,
		Date:       row.ReceivedDate,
		ChassisNo:  row.ChassisNo,
		EngineCode: row.EngineCode,
	}
	doc.Entries = ExtractNumberedEntries(row.RawText)
	doc.Technician = row.TechnicianName
	doc.PreparedBy = row.PreparedBy
	if len(row.Signature) > 0 {
		doc.SignaturePNG = base64.StdEncoding.EncodeToString(row.Signature)
	}
	doc.Notes = models.NotesNone
	return doc
}

// normalizeRows maps query rows to line items in original row order. The line
// total is the amount alone when the quantity is absent, otherwise
// quantity * amount rounded to two decimal places, and absent when the amount
// itself is absent.
func (s *DocumentService) normalizeRows(rows []models.ItemRow) []models.LineItem {
	lines := make([]models.LineItem, 0, len(rows))
	for _, row := range rows {
		amount := CoerceAmount(row.Amount, s.ErrorLog)
		quantity := CoerceAmount(row.Quantity, s.ErrorLog)

		var total *decimal.Decimal
		switch {
		case quantity == nil:
			total = amount
		case amount != nil:
			t := quantity.Mul(*amount).Round(2)
			total = &t
		}

		lines = append(lines, models.LineItem{
			Description: row.Item,
			Quantity:    quantity,
			DisplayQty:  DisplayQuantity(row.Quantity),
			UnitAmount:  amount,
			LineTotal:   total,
			JobID:       row.AssignedJob,
		})
	}
	return lines
}

func headerFromRow(row models.ItemRow) models.VehicleHeader {
	return models.VehicleHeader{
		ClientName: row.Fullname,
		MakeModel:  row.MakeAndModel,
		RegNo:      row.RegNo,
		Date:       row.Date,
		ChassisNo:  row.ChassisNo,
		EngineCode: row.EngineCode,
		Mileage:    row.Mileage,
	}
}

// aggregateTotals computes the financial summary and strips the previous
// balance carry-over row from the rendered sequence. The subtotal counts
// every line total (absent as zero) except the carry-over; the carry-over's
// amount comes back as the previous balance and the grand total is the sum of
// both. At most one row carries the sentinel description.
func aggregateTotals(lines []models.LineItem) ([]models.LineItem, models.DocumentTotals) {
	subtotal := decimal.Zero
	for _, line := range lines {
		if line.LineTotal != nil {
			subtotal = subtotal.Add(*line.LineTotal)
		}
	}

	previous := decimal.Zero
	kept := lines
	for i, line := range lines {
		if line.Description != previousBalanceSentinel {
			continue
		}
		if line.UnitAmount != nil {
			previous = *line.UnitAmount
		}
		if line.LineTotal != nil {
			subtotal = subtotal.Sub(*line.LineTotal)
		}
		kept = make([]models.LineItem, 0, len(lines)-1)
		kept = append(kept, lines[:i]...)
		kept = append(kept, lines[i+1:]...)
		break
	}

	return kept, models.DocumentTotals{
		Subtotal:        subtotal,
		PreviousBalance: previous,
		GrandTotal:      subtotal.Add(previous),
	}
}
