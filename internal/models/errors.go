package models

import (
	"errors"
)

var (
	ErrNoRecord                = errors.New("models: no matching record found")
	ErrInvalidCredentials      = errors.New("models: invalid credentials")
	ErrUnsupportedDocumentKind = errors.New("models: unsupported document kind")
	ErrEmptyDocument           = errors.New("models: no line items for job card")
	ErrNotificationNotFound    = errors.New("models: notification not found")
	ErrJobCardNotFound         = errors.New("models: job card not found")
)
