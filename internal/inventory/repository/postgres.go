package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

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

func (r *PGRepository) FindByBusiness(ctx context.Context, businessID int64) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.DB.SelectContext(ctx, &items,
		`SELECT * FROM inventory WHERE business_id = $1 ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select inventory")
	}
	return items, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.DB.GetContext(ctx, &item, `SELECT * FROM inventory WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Return nil if no record found (caller handles not-found)
		}
		return nil, pkgerrors.Wrap(err, "get inventory item")
	}
	return &item, nil
}

func (r *PGRepository) Create(ctx context.Context, item *model.InventoryItem) (int64, error) {
	query := `
        INSERT INTO inventory (
            business_id, user_id, ingredient_name, category, quantity,
            unit_id, cost, location, batch_number, expiration_date,
            status_id, created_at
        )
        VALUES (
            :business_id, :user_id, :ingredient_name, :category, :quantity,
            :unit_id, :cost, :location, :batch_number, :expiration_date,
            :status_id, :created_at
        )
        RETURNING id
    `
	// status_updated_at stays NULL so the reconciler picks the row up.
	stmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "prepare insert inventory")
	}
	defer stmt.Close()

	var id int64
	if err := stmt.GetContext(ctx, &id, item); err != nil {
		return 0, pkgerrors.Wrap(err, "insert inventory")
	}
	return id, nil
}

func (r *PGRepository) AdjustQuantity(ctx context.Context, id int64, quantity float64) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE inventory SET quantity = $1, status_updated_at = NULL WHERE id = $2`,
		quantity, id)
	if err != nil {
		return pkgerrors.Wrap(err, "adjust inventory quantity")
	}
	return nil
}

func (r *PGRepository) StatusByCode(ctx context.Context, code string) (*model.InventoryStatus, error) {
	var status model.InventoryStatus
	err := r.DB.GetContext(ctx, &status, `SELECT * FROM inventory_status WHERE code = $1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "get inventory status")
	}
	return &status, nil
}

func (r *PGRepository) IngredientsForMenuItems(ctx context.Context, businessID int64, menuItemIDs []int64) ([]model.MenuItemIngredient, error) {
	if len(menuItemIDs) == 0 {
		return []model.MenuItemIngredient{}, nil
	}

	query, args, err := sqlx.In(`
        SELECT * FROM menu_item_ingredients
        WHERE business_id = ? AND menu_item_id IN (?)
    `, businessID, menuItemIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "build ingredients query")
	}
	query = r.DB.Rebind(query)

	var ingredients []model.MenuItemIngredient
	if err := r.DB.SelectContext(ctx, &ingredients, query, args...); err != nil {
		return nil, pkgerrors.Wrap(err, "select ingredients")
	}
	return ingredients, nil
}

func (r *PGRepository) ActiveThresholds(ctx context.Context) ([]model.ThresholdRule, error) {
	var rules []model.ThresholdRule
	err := r.DB.SelectContext(ctx, &rules, `
        SELECT
            s.id, s.unit_id, s.value, s.status_id, s.active,
            st.code AS status_code,
            st.description AS status_title,
            st.severity
        FROM inventory_settings AS s
        INNER JOIN inventory_status AS st ON st.id = s.status_id
        WHERE s.active
    `)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select thresholds")
	}
	return rules, nil
}

func (r *PGRepository) EligibleItems(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.DB.SelectContext(ctx, &items,
		`SELECT * FROM inventory WHERE status_updated_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select eligible items")
	}
	return items, nil
}

// ApplyStatus couples the status write and the notification insert in one
// transaction. The status_updated_at IS NULL guard makes the call a no-op
// when another pass already stamped the row, so nothing is emitted twice.
func (r *PGRepository) ApplyStatus(ctx context.Context, itemID, statusID int64, at time.Time, n *model.Notification) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return pkgerrors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
        UPDATE inventory
        SET status_id = $1, status_updated_at = $2
        WHERE id = $3 AND status_updated_at IS NULL
    `, statusID, at, itemID)
	if err != nil {
		return pkgerrors.Wrap(err, "update status")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil
	}

	if err := insertNotification(ctx, tx, n); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PGRepository) ExpiredItems(ctx context.Context, now time.Time) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.DB.SelectContext(ctx, &items, `
        SELECT * FROM inventory
        WHERE expiration_date <= $1 AND is_expired = FALSE
        ORDER BY id
    `, now)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select expired items")
	}
	return items, nil
}

func (r *PGRepository) MarkExpired(ctx context.Context, itemID int64, n *model.Notification) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return pkgerrors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE inventory SET is_expired = TRUE WHERE id = $1 AND is_expired = FALSE`, itemID)
	if err != nil {
		return pkgerrors.Wrap(err, "mark expired")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil
	}

	if err := insertNotification(ctx, tx, n); err != nil {
		return err
	}
	return tx.Commit()
}

func insertNotification(ctx context.Context, tx *sqlx.Tx, n *model.Notification) error {
	_, err := tx.ExecContext(ctx, `
        INSERT INTO notifications (business_id, data, created_at)
        VALUES ($1, $2, $3)
    `, n.BusinessID, n.Data, n.CreatedAt)
	if err != nil {
		return pkgerrors.Wrap(err, "insert notification")
	}
	return nil
}
