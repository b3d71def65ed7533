package repository

import (
	"context"
	"database/sql"
	"time"

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

func (r *PGRepository) Onboard(ctx context.Context, b *model.Business, admin *model.User) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	var businessID int64
	err = tx.QueryRowxContext(ctx, `
        INSERT INTO businesses (name, address, contact, registration_number, status, verification_date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, b.Name, b.Address, b.Contact, b.RegistrationNumber, b.Status, b.VerificationDate).Scan(&businessID)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "insert business")
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO users (username, password, role, business_id, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, admin.Username, admin.Password, admin.Role, businessID, admin.CreatedAt)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "insert admin user")
	}

	if err := tx.Commit(); err != nil {
		return 0, pkgerrors.Wrap(err, "commit tx")
	}
	return businessID, nil
}

func (r *PGRepository) List(ctx context.Context) ([]model.Business, error) {
	var businesses []model.Business
	err := r.DB.SelectContext(ctx, &businesses, `
        SELECT * FROM businesses
        ORDER BY id
    `)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select businesses")
	}
	return businesses, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Business, error) {
	var b model.Business
	err := r.DB.GetContext(ctx, &b, `
        SELECT * FROM businesses
        WHERE id = $1
    `, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select business")
	}
	return &b, nil
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id int64, status string, verifiedAt time.Time) error {
	_, err := r.DB.ExecContext(ctx, `
        UPDATE businesses
        SET status = $1, verification_date = $2
        WHERE id = $3
    `, status, verifiedAt, id)
	if err != nil {
		return pkgerrors.Wrap(err, "update business status")
	}
	return nil
}
