package model

import "time"

type Business struct {
	ID                 int64     `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	Address            *string   `db:"address" json:"address"`
	Contact            *string   `db:"contact" json:"contact"`
	RegistrationNumber *string   `db:"registration_number" json:"registration_number"`
	Status             string    `db:"status" json:"status"`
	VerificationDate   time.Time `db:"verification_date" json:"verification_date"`
}

type User struct {
	UserID     int64     `db:"user_id" json:"user_id"`
	Username   string    `db:"username" json:"username"`
	Password   string    `db:"password" json:"-"`
	Role       string    `db:"role" json:"role"`
	BusinessID *int64    `db:"business_id" json:"business_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
