package notification

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type Repository interface {
	// Create appends one row to the notification log.
	Create(ctx context.Context, n *model.Notification) error

	// ListUnseen returns up to limit unseen notifications for the business,
	// newest first.
	ListUnseen(ctx context.Context, businessID int64, limit int) ([]model.Notification, error)

	// MarkAllSeen flips every unseen notification of the business to seen
	// and reports how many rows changed.
	MarkAllSeen(ctx context.Context, businessID int64) (int64, error)
}
