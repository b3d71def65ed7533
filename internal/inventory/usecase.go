package inventory

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient inventory")
)

type UseCase interface {
	ListInventory(ctx context.Context, businessID int64) ([]model.InventoryItem, error)
	AddItem(ctx context.Context, input *dto.AddItemInput) (*model.InventoryItem, error)
	AdjustQuantity(ctx context.Context, input *dto.AdjustQuantityInput) (*model.InventoryItem, error)
	DeductForOrder(ctx context.Context, input *dto.OrderDeductionInput) error
}
