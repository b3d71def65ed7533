package repository

import (
	"context"
	"database/sql"
	"errors"

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

func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.DB.GetContext(ctx, &user, `SELECT * FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "get user by username")
	}
	return &user, nil
}

func (r *PGRepository) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	err := r.DB.GetContext(ctx, &user, `SELECT * FROM users WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "get user by id")
	}
	return &user, nil
}

func (r *PGRepository) Create(ctx context.Context, user *model.User) (int64, error) {
	query := `
        INSERT INTO users (username, password, role, business_id, created_at)
        VALUES (:username, :password, :role, :business_id, :created_at)
        RETURNING user_id
    `
	stmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "prepare insert user")
	}
	defer stmt.Close()

	var id int64
	if err := stmt.GetContext(ctx, &id, user); err != nil {
		return 0, pkgerrors.Wrap(err, "insert user")
	}
	return id, nil
}
