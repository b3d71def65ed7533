package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/inventory"
	"github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	statusInStock    = "in_stock"
	statusOutOfStock = "out_of_stock"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, cache *cache.RedisClient, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context, businessID int64) ([]model.InventoryItem, error) {
	return uc.repo.FindByBusiness(ctx, businessID)
}

func (uc *inventoryUseCase) AddItem(ctx context.Context, input *dto.AddItemInput) (*model.InventoryItem, error) {
	if input.IngredientName == "" || input.Category == "" || input.Location == "" || input.UnitID == 0 {
		return nil, errors.New("all fields are required")
	}
	if input.Quantity < 0 {
		return nil, errors.New("quantity must not be negative")
	}

	// Seed status from a simple positive/zero check; the reconciler is the
	// sole authority afterwards (status_updated_at stays NULL).
	code := statusInStock
	if input.Quantity == 0 {
		code = statusOutOfStock
	}
	status, err := uc.repo.StatusByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, errors.Errorf("inventory status %q not seeded", code)
	}

	now := time.Now()
	item := &model.InventoryItem{
		BusinessID:     input.BusinessID,
		UserID:         input.UserID,
		IngredientName: input.IngredientName,
		Category:       input.Category,
		Quantity:       input.Quantity,
		UnitID:         input.UnitID,
		Cost:           input.Cost,
		Location:       input.Location,
		BatchNumber:    fmt.Sprintf("BN-%d-%04d", now.UnixMilli(), rand.Intn(10000)),
		ExpirationDate: input.ExpirationDate,
		StatusID:       &status.ID,
		CreatedAt:      now,
	}

	id, err := uc.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (uc *inventoryUseCase) AdjustQuantity(ctx context.Context, input *dto.AdjustQuantityInput) (*model.InventoryItem, error) {
	unlock, err := uc.lockItem(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	item, err := uc.repo.FindByID(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.BusinessID != input.BusinessID {
		return nil, inventory.ErrNotFound
	}

	newQuantity := item.Quantity + input.QuantityChange
	if newQuantity < 0 {
		return nil, inventory.ErrInsufficientStock
	}

	// Clearing status_updated_at re-arms automatic evaluation for the item.
	if err := uc.repo.AdjustQuantity(ctx, item.ID, newQuantity); err != nil {
		return nil, err
	}

	item.Quantity = newQuantity
	item.StatusUpdatedAt = nil
	return item, nil
}

func (uc *inventoryUseCase) DeductForOrder(ctx context.Context, input *dto.OrderDeductionInput) error {
	menuItemIDs := make([]int64, 0, len(input.Items))
	servings := make(map[int64]int, len(input.Items))
	for _, it := range input.Items {
		menuItemIDs = append(menuItemIDs, it.MenuItemID)
		servings[it.MenuItemID] += it.Quantity
	}

	ingredients, err := uc.repo.IngredientsForMenuItems(ctx, input.BusinessID, menuItemIDs)
	if err != nil {
		return err
	}

	deductions := make(map[int64]float64)
	for _, ing := range ingredients {
		deductions[ing.InventoryID] += ing.Quantity * float64(servings[ing.MenuItemID])
	}

	for inventoryID, qty := range deductions {
		_, err := uc.AdjustQuantity(ctx, &dto.AdjustQuantityInput{
			BusinessID:     input.BusinessID,
			InventoryID:    inventoryID,
			QuantityChange: -qty,
			Reason:         "Order Sale",
		})
		if err != nil {
			// A short batch must not block the rest of the order.
			uc.logger.Error("failed to deduct inventory for order",
				zap.Int64("order_id", input.OrderID),
				zap.Int64("inventory_id", inventoryID),
				zap.Float64("quantity", qty),
				zap.Error(err),
			)
		}
	}
	return nil
}

// lockItem serializes quantity mutations per item across instances.
func (uc *inventoryUseCase) lockItem(ctx context.Context, inventoryID int64) (func(), error) {
	if uc.cache == nil {
		return func() {}, nil
	}

	lockKey := fmt.Sprintf("lock:inventory:%d", inventoryID)
	lockValue := uuid.New().String()

	acquired := false
	for i := 0; i < 3; i++ {
		ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, 5*time.Second)
		if err != nil {
			uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		time.Sleep(100 * time.Millisecond) // wait before retry
	}
	if !acquired {
		return nil, errors.New("system busy, please try again later (lock)")
	}

	return func() {
		if err := uc.cache.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			uc.logger.Warn("failed to release inventory lock", zap.Error(err))
		}
	}, nil
}
