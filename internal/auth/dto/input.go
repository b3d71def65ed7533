package dto

type RegisterInput struct {
	Username   string
	Password   string
	Role       string
	BusinessID *int64
}
