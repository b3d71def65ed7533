package dto

type CreateCategoryInput struct {
	Name       string `json:"name"`
	BusinessID int64  `json:"-"`
	UserID     int64  `json:"-"`
}

type IngredientInput struct {
	IngredientID int64   `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

type AddMenuItemInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	CategoryID  int64             `json:"category_id"`
	Price       float64           `json:"price"`
	Ingredients []IngredientInput `json:"ingredients"`
	BusinessID  int64             `json:"-"`
	UserID      int64             `json:"-"`
}
