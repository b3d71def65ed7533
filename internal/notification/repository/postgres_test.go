package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "pgx")), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO notifications`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &model.Notification{
		BusinessID: 7,
		Data:       []byte(`{"code":"low_stock"}`),
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUnseen_NewestFirstWithLimit(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "business_id", "data", "is_seen", "created_at"}).
		AddRow(3, 7, []byte(`{}`), false, time.Now()).
		AddRow(2, 7, []byte(`{}`), false, time.Now().Add(-time.Minute))

	mock.ExpectQuery(`SELECT \* FROM notifications\s+WHERE business_id = \$1 AND is_seen = FALSE\s+ORDER BY created_at DESC\s+LIMIT \$2`).
		WithArgs(int64(7), 20).
		WillReturnRows(rows)

	notifications, err := repo.ListUnseen(context.Background(), 7, 20)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, int64(3), notifications[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllSeen(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE notifications\s+SET is_seen = TRUE\s+WHERE business_id = \$1 AND is_seen = FALSE`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	count, err := repo.MarkAllSeen(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
