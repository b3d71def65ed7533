package model

import "time"

// InventoryItem is one tracked stock batch. status_id and status_updated_at
// are NULL until the reconciler evaluates the item; a NULL
// status_updated_at marks the row as eligible for (re)evaluation.
type InventoryItem struct {
	ID              int64      `db:"id" json:"id"`
	BusinessID      int64      `db:"business_id" json:"business_id"`
	UserID          int64      `db:"user_id" json:"user_id"`
	IngredientName  string     `db:"ingredient_name" json:"ingredient_name"`
	Category        string     `db:"category" json:"category"`
	Quantity        float64    `db:"quantity" json:"quantity"`
	UnitID          int64      `db:"unit_id" json:"unit_id"`
	Cost            float64    `db:"cost" json:"cost"`
	Location        string     `db:"location" json:"location"`
	BatchNumber     string     `db:"batch_number" json:"batch_number"`
	ExpirationDate  *time.Time `db:"expiration_date" json:"expiration_date"`
	IsExpired       bool       `db:"is_expired" json:"is_expired"`
	StatusID        *int64     `db:"status_id" json:"status_id"`
	StatusUpdatedAt *time.Time `db:"status_updated_at" json:"status_updated_at"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

type Unit struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Abbreviation string `db:"abbreviation" json:"abbreviation"`
}

// InventoryStatus severity is the ordinal used when several threshold rules
// match the same quantity: the highest severity wins.
type InventoryStatus struct {
	ID          int64  `db:"id" json:"id"`
	Code        string `db:"code" json:"code"`
	Description string `db:"description" json:"description"`
	Severity    int    `db:"severity" json:"severity"`
}

// ThresholdRule is one (unit, status) breakpoint from inventory_settings.
// The status columns are joined in by the repository so the evaluator can
// rank matches by severity without extra lookups.
type ThresholdRule struct {
	ID       int64   `db:"id" json:"id"`
	UnitID   int64   `db:"unit_id" json:"unit_id"`
	Value    float64 `db:"value" json:"value"`
	StatusID int64   `db:"status_id" json:"status_id"`
	Active   bool    `db:"active" json:"active"`

	StatusCode  string `db:"status_code" json:"status_code"`
	StatusTitle string `db:"status_title" json:"status_title"`
	Severity    int    `db:"severity" json:"severity"`
}
