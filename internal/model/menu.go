package model

import "time"

type Category struct {
	CategoryID int64     `db:"category_id" json:"category_id"`
	Name       string    `db:"name" json:"name"`
	BusinessID int64     `db:"business_id" json:"business_id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type MenuItem struct {
	MenuItemID  int64     `db:"menu_item_id" json:"menu_item_id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	CategoryID  *int64    `db:"category_id" json:"category_id"`
	BusinessID  int64     `db:"business_id" json:"business_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Price       float64   `db:"price" json:"price"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	Ingredients []MenuItemIngredient `db:"-" json:"ingredients,omitempty"`
}

// MenuItemIngredient links a menu item to the inventory batches it consumes
// and how much of each a single serving uses.
type MenuItemIngredient struct {
	ID          int64   `db:"id" json:"id"`
	MenuItemID  int64   `db:"menu_item_id" json:"menu_item_id"`
	InventoryID int64   `db:"inventory_id" json:"inventory_id"`
	Quantity    float64 `db:"quantity" json:"quantity"`
	BusinessID  int64   `db:"business_id" json:"business_id"`
	UserID      int64   `db:"user_id" json:"user_id"`
}
