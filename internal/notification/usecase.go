package notification

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type UseCase interface {
	// Emit appends one notification carrying the opaque payload. Failures
	// are the caller's to log; there is no retry.
	Emit(ctx context.Context, businessID int64, payload model.NotificationPayload) error

	Unseen(ctx context.Context, businessID int64, limit int) ([]model.Notification, error)

	// AckAll marks every unseen notification of the business as seen.
	AckAll(ctx context.Context, businessID int64) (int64, error)
}
