package inventory

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type Repository interface {
	// Inventory items
	FindByBusiness(ctx context.Context, businessID int64) ([]model.InventoryItem, error)
	FindByID(ctx context.Context, id int64) (*model.InventoryItem, error)
	Create(ctx context.Context, item *model.InventoryItem) (int64, error)

	// AdjustQuantity sets the new quantity and clears status_updated_at so
	// the next reconcile pass re-derives the item's status.
	AdjustQuantity(ctx context.Context, id int64, quantity float64) error

	// Lookups
	StatusByCode(ctx context.Context, code string) (*model.InventoryStatus, error)
	IngredientsForMenuItems(ctx context.Context, businessID int64, menuItemIDs []int64) ([]model.MenuItemIngredient, error)

	// Reconciliation (see reconciler.Store)
	ActiveThresholds(ctx context.Context) ([]model.ThresholdRule, error)
	EligibleItems(ctx context.Context) ([]model.InventoryItem, error)
	ApplyStatus(ctx context.Context, itemID, statusID int64, at time.Time, n *model.Notification) error
	ExpiredItems(ctx context.Context, now time.Time) ([]model.InventoryItem, error)
	MarkExpired(ctx context.Context, itemID int64, n *model.Notification) error
}
