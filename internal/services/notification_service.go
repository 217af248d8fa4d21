package services

import (
	"context"

	"bmaBack/internal/models"
)

// NotificationStore is the outbox slice of the store: list what is still
// pending and flip single records to delivered.
type NotificationStore interface {
	ListPending(ctx context.Context) ([]models.Notification, error)
	MarkDelivered(ctx context.Context, id int) error
}

type NotificationService struct {
	Repo NotificationStore
}

func (s *NotificationService) ListPending(ctx context.Context) ([]models.Notification, error) {
	return s.Repo.ListPending(ctx)
}

func (s *NotificationService) MarkDelivered(ctx context.Context, id int) error {
	return s.Repo.MarkDelivered(ctx, id)
}
