package dto

import "time"

type AddItemInput struct {
	BusinessID     int64
	UserID         int64
	IngredientName string
	Category       string
	Quantity       float64
	UnitID         int64
	Cost           float64
	Location       string
	ExpirationDate *time.Time
}

type AdjustQuantityInput struct {
	BusinessID     int64
	InventoryID    int64
	QuantityChange float64
	Reason         string
}

type OrderDeductionInput struct {
	BusinessID int64
	OrderID    int64
	Items      []OrderDeductionItem
}

type OrderDeductionItem struct {
	MenuItemID int64
	Quantity   int
}
