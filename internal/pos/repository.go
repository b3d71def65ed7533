package pos

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type Repository interface {
	// CreateTransaction persists the transaction, its order and the order
	// items in one database transaction and returns the new ids.
	CreateTransaction(ctx context.Context, t *model.Transaction, order *model.Order, items []model.OrderItem) (transactionID, orderID int64, err error)

	// ListOrders returns the business's orders newest first, each with its
	// items and their menu item names attached.
	ListOrders(ctx context.Context, businessID int64) ([]model.Order, error)

	// UpdateOrderStatus reports whether an order of the business matched.
	UpdateOrderStatus(ctx context.Context, orderID, businessID int64, status string) (bool, error)
}
