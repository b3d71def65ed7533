package menu

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/menu/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/pkg/errors"
)

var ErrMissingFields = errors.New("missing required fields")

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	ListCategories(ctx context.Context, businessID int64) ([]model.Category, error)
	AddMenuItem(ctx context.Context, input *dto.AddMenuItemInput) (*model.MenuItem, error)
	ListMenuItems(ctx context.Context, businessID int64) ([]model.MenuItem, error)
}
