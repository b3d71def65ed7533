package model

import "time"

type Transaction struct {
	ID              int64     `db:"id" json:"id"`
	Subtotal        float64   `db:"subtotal" json:"subtotal"`
	Tax             float64   `db:"tax" json:"tax"`
	Total           float64   `db:"total" json:"total"`
	CashAmount      float64   `db:"cash_amount" json:"cash_amount"`
	ChangeAmount    float64   `db:"change_amount" json:"change_amount"`
	PaymentMethod   string    `db:"payment_method" json:"payment_method"`
	Status          string    `db:"status" json:"status"`
	TransactionDate time.Time `db:"transaction_date" json:"transaction_date"`
	BusinessID      int64     `db:"business_id" json:"business_id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	DiscountAmount  float64   `db:"discount_amount" json:"discount_amount"`
	PaymentStatus   string    `db:"payment_status" json:"payment_status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type Order struct {
	ID            int64     `db:"id" json:"id"`
	TransactionID int64     `db:"transaction_id" json:"transaction_id"`
	Amount        float64   `db:"amount" json:"amount"`
	BusinessID    int64     `db:"business_id" json:"business_id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	OrderDate     time.Time `db:"order_date" json:"order_date"`
	Status        string    `db:"status" json:"status"`
	PaymentStatus *string   `db:"payment_status" json:"payment_status"`
	Note          *string   `db:"note" json:"note"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`

	Items []OrderItem `db:"-" json:"items"`
}

type OrderItem struct {
	ID            int64     `db:"id" json:"id"`
	OrderID       int64     `db:"order_id" json:"order_id"`
	MenuItemID    int64     `db:"menu_item_id" json:"menu_item_id"`
	TransactionID int64     `db:"transaction_id" json:"transaction_id"`
	Quantity      int       `db:"quantity" json:"quantity"`
	Price         float64   `db:"price" json:"price"`
	Total         float64   `db:"total" json:"total"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`

	MenuItemName string `db:"menu_item_name" json:"menu_item_name,omitempty"`
}
