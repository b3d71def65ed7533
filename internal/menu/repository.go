package menu

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type Repository interface {
	CreateCategory(ctx context.Context, c *model.Category) (int64, error)
	ListCategories(ctx context.Context, businessID int64) ([]model.Category, error)

	// CreateMenuItem inserts the item and its ingredient links in one
	// transaction and returns the new menu item id.
	CreateMenuItem(ctx context.Context, item *model.MenuItem) (int64, error)

	// ListMenuItems returns the business's menu items with their ingredient
	// links attached.
	ListMenuItems(ctx context.Context, businessID int64) ([]model.MenuItem, error)
}
