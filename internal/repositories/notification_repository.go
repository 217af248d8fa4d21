package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bmaBack/internal/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

// ListPending returns every outbox row still flagged for delivery, in
// primary-key order so concurrent pollers see a stable sequence for a fixed
// store state. No claim or lease is taken: overlapping pollers may both see
// the same record, which is the at-least-once contract.
func (r *NotificationRepository) ListPending(ctx context.Context) ([]models.Notification, error) {
	query := `
        SELECT id, fullname, phone, message, jobcardrefid, document
        FROM tbl_sms
        WHERE flag = TRUE
        ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		var doc sql.NullString
		err := rows.Scan(&n.ID, &n.Fullname, &n.Phone, &n.Message, &n.JobCardRef, &doc)
		if err != nil {
			return nil, err
		}
		n.Document = doc.String
		n.Pending = true
		pending = append(pending, n)
	}
	return pending, rows.Err()
}

// MarkDelivered flips a single outbox row to delivered. Acknowledging an
// already-delivered id is a no-op; an id that never existed returns
// models.ErrNotificationNotFound. The single-row UPDATE is the only
// consistency mechanism, so delivered records can never flip back.
func (r *NotificationRepository) MarkDelivered(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE tbl_sms SET flag = FALSE WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// Zero rows touched: either the record was already delivered (fine) or
	// the id does not exist at all.
	var exists int
	err = r.DB.QueryRowContext(ctx, `SELECT 1 FROM tbl_sms WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotificationNotFound
	}
	return err
}
