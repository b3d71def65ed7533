package reconciler

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

// Store is the slice of the inventory repository the reconciliation job
// needs. Mutating calls couple the ledger write and the notification insert
// in one transaction so an item is never updated without its notification.
type Store interface {
	// ActiveThresholds returns all active rules with status metadata joined.
	ActiveThresholds(ctx context.Context) ([]model.ThresholdRule, error)

	// EligibleItems returns items with status_updated_at IS NULL.
	EligibleItems(ctx context.Context) ([]model.InventoryItem, error)

	// ApplyStatus sets status_id and status_updated_at on the item and
	// inserts the notification, atomically.
	ApplyStatus(ctx context.Context, itemID, statusID int64, at time.Time, n *model.Notification) error

	// ExpiredItems returns items with expiration_date <= now that are not
	// yet flagged expired. The boundary case expiration_date == now is
	// included.
	ExpiredItems(ctx context.Context, now time.Time) ([]model.InventoryItem, error)

	// MarkExpired flips is_expired and inserts the notification, atomically.
	MarkExpired(ctx context.Context, itemID int64, n *model.Notification) error
}
