package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"bmaBack/internal/models"
)

type DocumentRepository struct {
	DB *sql.DB
}

const quotationItemsQuery = `
        SELECT
            tbl_clientcontacts.Fullname,
            tbl_jobcarddetails.MakeAndModel,
            tbl_jobcarddetails.RegNo,
            tbl_quotation.Date,
            tbl_jobcarddetails.ChassisNo,
            tbl_jobcarddetails.EngineCode,
            tbl_jobcarddetails.Mileage,
            tbl_quotation.Item,
            tbl_quotation.QuantityIssued,
            tbl_quotation.Amount,
            tbl_quotation.AssignedJobID
        FROM
            (tbl_jobcarddetails
            INNER JOIN tbl_clientcontacts
            ON tbl_jobcarddetails.ClientDetails = tbl_clientcontacts.ID)
        INNER JOIN tbl_quotation
            ON tbl_jobcarddetails.ID = tbl_quotation.AssignedJobID
        WHERE tbl_quotation.AssignedJobID = ?
`

const quotationFeedbackItemsQuery = `
        SELECT
            tbl_clientcontacts.Fullname,
            tbl_jobcarddetails.MakeAndModel,
            tbl_jobcarddetails.RegNo,
            tbl_quotationpartsandservicesfeedback.Date,
            tbl_jobcarddetails.ChassisNo,
            tbl_jobcarddetails.EngineCode,
            tbl_jobcarddetails.Mileage,
            tbl_quotationpartsandservicesfeedback.Item,
            tbl_quotationpartsandservicesfeedback.QuantityIssued,
            tbl_quotationpartsandservicesfeedback.Amount,
            tbl_quotationpartsandservicesfeedback.AssignedJobID
        FROM
            (tbl_jobcarddetails
            INNER JOIN tbl_clientcontacts
            ON tbl_jobcarddetails.ClientDetails = tbl_clientcontacts.ID)
        INNER JOIN tbl_quotationpartsandservicesfeedback
            ON tbl_jobcarddetails.ID = tbl_quotationpartsandservicesfeedback.AssignedJobID
        WHERE tbl_quotationpartsandservicesfeedback.AssignedJobID = ?
`

const invoiceItemsQuery = `
        SELECT
            tbl_clientcontacts.Fullname,
            tbl_jobcarddetails.MakeAndModel,
            tbl_jobcarddetails.RegNo,
            tbl_invoices.Date,
            tbl_jobcarddetails.ChassisNo,
            tbl_jobcarddetails.EngineCode,
            tbl_jobcarddetails.Mileage,
            tbl_invoices.Item,
            tbl_invoices.QuantityIssued,
            tbl_invoices.Amount,
            tbl_invoices.AssignedJobID
        FROM
            (tbl_jobcarddetails
            INNER JOIN tbl_clientcontacts
            ON tbl_jobcarddetails.ClientDetails = tbl_clientcontacts.ID)
        INNER JOIN tbl_invoices
            ON tbl_jobcarddetails.ID = tbl_invoices.AssignedJobID
        WHERE tbl_invoices.AssignedJobID = ?
        ORDER BY tbl_invoices.ID
`

// JobCardRef returns the human-facing reference of a job card, used to name
// generated documents.
func (r *DocumentRepository) JobCardRef(ctx context.Context, jobID int) (string, error) {
	var ref string
	err := r.DB.QueryRowContext(ctx, `SELECT JobCardRef FROM tbl_jobcarddetails WHERE ID = ?`, jobID).Scan(&ref)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrJobCardNotFound
	}
	if err != nil {
		return "", err
	}
	return ref, nil
}

func (r *DocumentRepository) QuotationItems(ctx context.Context, jobID int) ([]models.ItemRow, error) {
	return r.queryItems(ctx, quotationItemsQuery, jobID)
}

func (r *DocumentRepository) QuotationFeedbackItems(ctx context.Context, jobID int) ([]models.ItemRow, error) {
	return r.queryItems(ctx, quotationFeedbackItemsQuery, jobID)
}

// InvoiceItems returns the invoice rows for a job, ordered by record id so
// line order matches insertion order.
func (r *DocumentRepository) InvoiceItems(ctx context.Context, jobID int) ([]models.ItemRow, error) {
	return r.queryItems(ctx, invoiceItemsQuery, jobID)
}

func (r *DocumentRepository) queryItems(ctx context.Context, query string, jobID int) ([]models.ItemRow, error) {
	rows, err := r.DB.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	items := []models.ItemRow{}
	for rows.Next() {
		var row models.ItemRow
		var date, chassis, engine, mileage, item sql.NullString
		var qty, amount any
		err := rows.Scan(&row.Fullname, &row.MakeAndModel, &row.RegNo, &date,
			&chassis, &engine, &mileage, &item, &qty, &amount, &row.AssignedJob)
		if err != nil {
			return nil, err
		}
		row.Date = date.String
		row.ChassisNo = chassis.String
		row.EngineCode = engine.String
		row.Mileage = mileage.String
		row.Item = item.String
		row.Quantity = decodeStored(qty, types[8])
		row.Amount = decodeStored(amount, types[9])
		items = append(items, row)
	}
	return items, rows.Err()
}

const paymentsQuery = `
        SELECT
            p.Date,
            j.JobCardRef,
            p.PaymentMode,
            SUM(
                COALESCE(i.QuantityIssued, 1) * i.Amount
            ) AS InvoiceAmount,
            p.AmountPaid,
            p.Discount,
            p.Balance
        FROM
            tbl_payments AS p
        JOIN tbl_jobcarddetails AS j
          ON p.JobCardRefID = j.ID
        JOIN tbl_invoices AS i
          ON j.ID = i.AssignedJobID
        WHERE p.JobCardRefID = ?
        GROUP BY
            p.ID,
            p.Date,
            j.JobCardRef,
            p.PaymentMode,
            p.AmountPaid,
            p.Discount,
            p.Balance
        ORDER BY
            p.Date DESC
`

func (r *DocumentRepository) Payments(ctx context.Context, jobID int) ([]models.PaymentRow, error) {
	rows, err := r.DB.QueryContext(ctx, paymentsQuery, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	payments := []models.PaymentRow{}
	for rows.Next() {
		var row models.PaymentRow
		var date, mode sql.NullString
		var invoiced, paid, discount, balance any
		err := rows.Scan(&date, &row.JobCardRef, &mode, &invoiced, &paid, &discount, &balance)
		if err != nil {
			return nil, err
		}
		row.Date = date.String
		row.Mode = mode.String
		row.Invoiced = decodeStored(invoiced, types[3])
		row.Paid = decodeStored(paid, types[4])
		row.Discount = decodeStored(discount, types[5])
		row.Balance = decodeStored(balance, types[6])
		payments = append(payments, row)
	}
	return payments, rows.Err()
}

const defectsByStaffQuery = `
        SELECT
            tbl_clientcontacts.Fullname AS ClientName,
            tbl_jobcarddetails.RegNo,
            tbl_jobcarddetails.MakeAndModel,
            tbl_jobcarddetails.EngineCode,
            tbl_jobcarddetails.ChassisNo,
            tbl_jobcarddetails.ReceivedDate,
            tbl_technicians.Fullname AS TechnicianName,
            tbl_techniciandefectsandrequestedparts.Defects,
            tbl_checkstaff.Staff AS PreparedByStaff,
            tbl_techniciandefectsandrequestedparts.Signature
        FROM tbl_jobcarddetails
        JOIN tbl_clientcontacts
            ON tbl_clientcontacts.ID = tbl_jobcarddetails.ClientDetails
        JOIN tbl_pendingassignedjobs
            ON tbl_pendingassignedjobs.JobCardRefID = tbl_jobcarddetails.ID
        JOIN tbl_technicians
            ON tbl_technicians.ID = tbl_pendingassignedjobs.TechnicianID
        JOIN tbl_techniciandefectsandrequestedparts
            ON tbl_techniciandefectsandrequestedparts.JobCardRefID = tbl_jobcarddetails.ID
        JOIN tbl_checkstaff
            ON tbl_checkstaff.Staff = tbl_techniciandefectsandrequestedparts.PreparedByStaff
        WHERE tbl_jobcarddetails.ID = ?
`

const defectsByTechnicianQuery = `
        SELECT
            tbl_clientcontacts.Fullname AS ClientName,
            tbl_jobcarddetails.RegNo,
            tbl_jobcarddetails.MakeAndModel,
            tbl_jobcarddetails.EngineCode,
            tbl_jobcarddetails.ChassisNo,
            tbl_jobcarddetails.ReceivedDate,
            tbl_technicians.Fullname AS TechnicianName,
            tbl_techniciandefectsandrequestedparts.Defects,
            tbl_technicians.Fullname AS PreparedByStaff,
            tbl_techniciandefectsandrequestedparts.Signature
        FROM tbl_jobcarddetails
        JOIN tbl_clientcontacts
            ON tbl_clientcontacts.ID = tbl_jobcarddetails.ClientDetails
        JOIN tbl_pendingassignedjobs
            ON tbl_pendingassignedjobs.JobCardRefID = tbl_jobcarddetails.ID
        JOIN tbl_techniciandefectsandrequestedparts
            ON tbl_techniciandefectsandrequestedparts.JobCardRefID = tbl_jobcarddetails.ID
        JOIN tbl_technicians
            ON tbl_technicians.Fullname = tbl_techniciandefectsandrequestedparts.PreparedByStaff
        WHERE tbl_jobcarddetails.ID = ?
`

// DefectsDetails fetches the defects sheet for a job card. Older sheets were
// prepared by check staff, newer ones by the technician directly; the staff
// join is tried first and the technician join is the fallback.
func (r *DocumentRepository) DefectsDetails(ctx context.Context, jobID int) (models.JobNotesRow, error) {
	row, err := r.scanNotesRow(ctx, defectsByStaffQuery, jobID, true)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.JobNotesRow{}, err
	}
	row, err = r.scanNotesRow(ctx, defectsByTechnicianQuery, jobID, true)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobNotesRow{}, models.ErrNoRecord
	}
	if err != nil {
		return models.JobNotesRow{}, err
	}
	return row, nil
}

const techNotesQuery = `
        SELECT
            tbl_clientcontacts.Fullname AS ClientName,
            tbl_jobcarddetails.RegNo,
            tbl_jobcarddetails.MakeAndModel,
            tbl_jobcarddetails.EngineCode,
            tbl_jobcarddetails.ChassisNo,
            tbl_jobcarddetails.ReceivedDate,
            tbl_technicians.Fullname AS TechnicianName,
            tbl_jobcarddetails.Notes
        FROM tbl_jobcarddetails
        JOIN tbl_clientcontacts
            ON tbl_clientcontacts.ID = tbl_jobcarddetails.ClientDetails
        JOIN tbl_pendingassignedjobs
            ON tbl_pendingassignedjobs.JobCardRefID = tbl_jobcarddetails.ID
        JOIN tbl_technicians
            ON tbl_technicians.ID = tbl_pendingassignedjobs.TechnicianID
        WHERE tbl_jobcarddetails.ID = ?
`

func (r *DocumentRepository) TechNotesDetails(ctx context.Context, jobID int) (models.JobNotesRow, error) {
	row, err := r.scanNotesRow(ctx, techNotesQuery, jobID, false)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobNotesRow{}, models.ErrNoRecord
	}
	if err != nil {
		return models.JobNotesRow{}, err
	}
	return row, nil
}

func (r *DocumentRepository) scanNotesRow(ctx context.Context, query string, jobID int, withSignature bool) (models.JobNotesRow, error) {
	var row models.JobNotesRow
	var engine, chassis, received, rawText sql.NullString

	dest := []any{&row.ClientName, &row.RegNo, &row.MakeAndModel, &engine,
		&chassis, &received, &row.TechnicianName, &rawText}
	if withSignature {
		dest = append(dest, &row.PreparedBy, &row.Signature)
	}

	if err := r.DB.QueryRowContext(ctx, query, jobID).Scan(dest...); err != nil {
		return models.JobNotesRow{}, err
	}
	row.EngineCode = engine.String
	row.ChassisNo = chassis.String
	row.ReceivedDate = received.String
	row.RawText = rawText.String
	return row, nil
}

// decodeStored maps driver-native bytes back to the Go type the column
// implies. The driver hands DECIMAL and legacy VARCHAR columns over as raw
// bytes alike; without the column type a numeric quantity would be
// indistinguishable from free text downstream.
func decodeStored(v any, ct *sql.ColumnType) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(b)
	switch ct.DatabaseTypeName() {
	case "DECIMAL", "NUMERIC", "FLOAT", "DOUBLE":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "BIGINT":
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return s
}
