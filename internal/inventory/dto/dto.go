package dto

import "time"

type AddItemRequest struct {
	IngredientName string     `json:"ingredient_name"`
	Category       string     `json:"category"`
	Quantity       float64    `json:"quantity"`
	UnitID         int64      `json:"unit_id"`
	Cost           float64    `json:"cost"`
	Location       string     `json:"location"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

type AdjustQuantityRequest struct {
	InventoryID    int64   `json:"inventory_id"`
	QuantityChange float64 `json:"quantity_change"`
	Reason         string  `json:"reason"`
}
