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

func (r *PGRepository) CreateTransaction(ctx context.Context, t *model.Transaction, order *model.Order, items []model.OrderItem) (int64, int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, pkgerrors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	var transactionID int64
	err = tx.QueryRowxContext(ctx, `
        INSERT INTO transactions (
            subtotal, tax, total, cash_amount, change_amount, payment_method,
            status, transaction_date, business_id, user_id, discount_amount, payment_status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `, t.Subtotal, t.Tax, t.Total, t.CashAmount, t.ChangeAmount, t.PaymentMethod,
		t.Status, t.TransactionDate, t.BusinessID, t.UserID, t.DiscountAmount, t.PaymentStatus).Scan(&transactionID)
	if err != nil {
		return 0, 0, pkgerrors.Wrap(err, "insert transaction")
	}

	var orderID int64
	err = tx.QueryRowxContext(ctx, `
        INSERT INTO orders (
            transaction_id, amount, business_id, user_id, order_date, status, payment_status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, transactionID, order.Amount, order.BusinessID, order.UserID,
		order.OrderDate, order.Status, order.PaymentStatus).Scan(&orderID)
	if err != nil {
		return 0, 0, pkgerrors.Wrap(err, "insert order")
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO order_items (order_id, menu_item_id, transaction_id, quantity, price, total)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, orderID, item.MenuItemID, transactionID, item.Quantity, item.Price, item.Total)
		if err != nil {
			return 0, 0, pkgerrors.Wrap(err, "insert order item")
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, pkgerrors.Wrap(err, "commit tx")
	}
	return transactionID, orderID, nil
}

func (r *PGRepository) ListOrders(ctx context.Context, businessID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.DB.SelectContext(ctx, &orders, `
        SELECT * FROM orders
        WHERE business_id = $1
        ORDER BY order_date DESC
    `, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select orders")
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	query, args, err := sqlx.In(`
        SELECT oi.*, mi.name AS menu_item_name
        FROM order_items oi
        LEFT JOIN menu_items mi ON oi.menu_item_id = mi.menu_item_id
        WHERE oi.order_id IN (?)
    `, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "build order items query")
	}
	query = r.DB.Rebind(query)

	var items []model.OrderItem
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, pkgerrors.Wrap(err, "select order items")
	}

	byOrder := make(map[int64][]model.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *PGRepository) UpdateOrderStatus(ctx context.Context, orderID, businessID int64, status string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
        UPDATE orders
        SET status = $1, updated_at = now()
        WHERE id = $2 AND business_id = $3
    `, status, orderID, businessID)
	if err != nil {
		return false, pkgerrors.Wrap(err, "update order status")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, pkgerrors.Wrap(err, "rows affected")
	}
	return rows > 0, nil
}
