package repository

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/pkg/errors"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateCategory(ctx context.Context, c *model.Category) (int64, error) {
	var id int64
	err := r.DB.QueryRowxContext(ctx, `
        INSERT INTO categories (name, business_id, user_id, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING category_id
    `, c.Name, c.BusinessID, c.UserID, c.CreatedAt).Scan(&id)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "insert category")
	}
	return id, nil
}

func (r *PGRepository) ListCategories(ctx context.Context, businessID int64) ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.SelectContext(ctx, &categories, `
        SELECT * FROM categories
        WHERE business_id = $1
        ORDER BY category_id
    `, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select categories")
	}
	return categories, nil
}

func (r *PGRepository) CreateMenuItem(ctx context.Context, item *model.MenuItem) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowxContext(ctx, `
        INSERT INTO menu_items (name, description, category_id, business_id, user_id, price, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING menu_item_id
    `, item.Name, item.Description, item.CategoryID, item.BusinessID, item.UserID, item.Price, item.CreatedAt).Scan(&id)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "insert menu item")
	}

	for _, ing := range item.Ingredients {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO menu_item_ingredients (menu_item_id, inventory_id, quantity, business_id, user_id)
            VALUES ($1, $2, $3, $4, $5)
        `, id, ing.InventoryID, ing.Quantity, item.BusinessID, item.UserID)
		if err != nil {
			return 0, pkgerrors.Wrap(err, "insert menu item ingredient")
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, pkgerrors.Wrap(err, "commit tx")
	}
	return id, nil
}

func (r *PGRepository) ListMenuItems(ctx context.Context, businessID int64) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.DB.SelectContext(ctx, &items, `
        SELECT * FROM menu_items
        WHERE business_id = $1
        ORDER BY menu_item_id
    `, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select menu items")
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MenuItemID)
	}

	query, args, err := sqlx.In(`
        SELECT * FROM menu_item_ingredients
        WHERE menu_item_id IN (?)
    `, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "build ingredients query")
	}
	query = r.DB.Rebind(query)

	var ingredients []model.MenuItemIngredient
	if err := r.DB.SelectContext(ctx, &ingredients, query, args...); err != nil {
		return nil, pkgerrors.Wrap(err, "select menu item ingredients")
	}

	byItem := make(map[int64][]model.MenuItemIngredient, len(items))
	for _, ing := range ingredients {
		byItem[ing.MenuItemID] = append(byItem[ing.MenuItemID], ing)
	}
	for i := range items {
		items[i].Ingredients = byItem[items[i].MenuItemID]
	}
	return items, nil
}
