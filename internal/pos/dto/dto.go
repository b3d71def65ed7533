package dto

type OrderLine struct {
	MenuItemID int64   `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type CreateTransactionInput struct {
	Order         []OrderLine `json:"order"`
	PaymentMethod string      `json:"payment_method"`
	AmountPaid    float64     `json:"amount_paid"`
	BusinessID    int64       `json:"-"`
	UserID        int64       `json:"-"`
}

type CreateTransactionResult struct {
	Message       string  `json:"message"`
	TransactionID int64   `json:"transaction_id"`
	OrderID       int64   `json:"order_id"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	ChangeAmount  float64 `json:"change_amount"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
