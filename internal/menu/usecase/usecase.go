package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/menu"
	"github.com/fekuna/omnipos-backoffice-service/internal/menu/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"go.uber.org/zap"
)

type menuUseCase struct {
	repo   menu.Repository
	logger logger.ZapLogger
}

func NewMenuUseCase(repo menu.Repository, log logger.ZapLogger) menu.UseCase {
	return &menuUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *menuUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if input.Name == "" {
		return nil, menu.ErrMissingFields
	}

	c := &model.Category{
		Name:       input.Name,
		BusinessID: input.BusinessID,
		UserID:     input.UserID,
		CreatedAt:  time.Now(),
	}
	id, err := uc.repo.CreateCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	c.CategoryID = id
	return c, nil
}

func (uc *menuUseCase) ListCategories(ctx context.Context, businessID int64) ([]model.Category, error) {
	return uc.repo.ListCategories(ctx, businessID)
}

func (uc *menuUseCase) AddMenuItem(ctx context.Context, input *dto.AddMenuItemInput) (*model.MenuItem, error) {
	if input.Name == "" || input.CategoryID == 0 || input.Price <= 0 || len(input.Ingredients) == 0 {
		return nil, menu.ErrMissingFields
	}

	item := &model.MenuItem{
		Name:       input.Name,
		CategoryID: &input.CategoryID,
		BusinessID: input.BusinessID,
		UserID:     input.UserID,
		Price:      input.Price,
		CreatedAt:  time.Now(),
	}
	if input.Description != "" {
		item.Description = &input.Description
	}
	for _, ing := range input.Ingredients {
		item.Ingredients = append(item.Ingredients, model.MenuItemIngredient{
			InventoryID: ing.IngredientID,
			Quantity:    ing.Quantity,
			BusinessID:  input.BusinessID,
			UserID:      input.UserID,
		})
	}

	id, err := uc.repo.CreateMenuItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.MenuItemID = id

	uc.logger.Info("menu item created",
		zap.Int64("menu_item_id", id),
		zap.Int64("business_id", input.BusinessID),
		zap.Int("ingredients", len(item.Ingredients)),
	)
	return item, nil
}

func (uc *menuUseCase) ListMenuItems(ctx context.Context, businessID int64) ([]model.MenuItem, error) {
	return uc.repo.ListMenuItems(ctx, businessID)
}
