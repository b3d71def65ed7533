package repository

import (
	"context"

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

func (r *PGRepository) Create(ctx context.Context, n *model.Notification) error {
	query := `
        INSERT INTO notifications (business_id, data, created_at)
        VALUES (:business_id, :data, :created_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, n); err != nil {
		return pkgerrors.Wrap(err, "insert notification")
	}
	return nil
}

func (r *PGRepository) ListUnseen(ctx context.Context, businessID int64, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.DB.SelectContext(ctx, &notifications, `
        SELECT * FROM notifications
        WHERE business_id = $1 AND is_seen = FALSE
        ORDER BY created_at DESC
        LIMIT $2
    `, businessID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "select unseen notifications")
	}
	return notifications, nil
}

func (r *PGRepository) MarkAllSeen(ctx context.Context, businessID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
        UPDATE notifications
        SET is_seen = TRUE
        WHERE business_id = $1 AND is_seen = FALSE
    `, businessID)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "mark notifications seen")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, pkgerrors.Wrap(err, "rows affected")
	}
	return rows, nil
}
