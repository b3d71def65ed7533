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

func TestActiveThresholds(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "unit_id", "value", "status_id", "active", "status_code", "status_title", "severity"}).
		AddRow(1, 1, 10.0, 2, true, "low_stock", "Low Stock", 2).
		AddRow(2, 1, 0.0, 3, true, "out_of_stock", "Out of Stock", 3)

	mock.ExpectQuery(`SELECT\s+s\.id, s\.unit_id, s\.value, s\.status_id, s\.active`).
		WillReturnRows(rows)

	rules, err := repo.ActiveThresholds(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "low_stock", rules[0].StatusCode)
	assert.Equal(t, 3, rules[1].Severity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEligibleItems(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "business_id", "quantity", "unit_id"}).
		AddRow(1, 7, 5.0, 1)

	mock.ExpectQuery(`SELECT \* FROM inventory WHERE status_updated_at IS NULL`).
		WillReturnRows(rows)

	items, err := repo.EligibleItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].StatusUpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStatus_CommitsStatusAndNotification(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	n := &model.Notification{BusinessID: 7, Data: []byte(`{"code":"low_stock"}`), CreatedAt: now}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE inventory\s+SET status_id = \$1, status_updated_at = \$2\s+WHERE id = \$3 AND status_updated_at IS NULL`).
		WithArgs(int64(2), now, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO notifications`).
		WithArgs(int64(7), n.Data, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ApplyStatus(context.Background(), 1, 2, now, n)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStatus_GateAlreadyStamped(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE inventory\s+SET status_id = \$1, status_updated_at = \$2`).
		WithArgs(int64(2), now, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	// No rows matched: no notification insert, no commit.
	err := repo.ApplyStatus(context.Background(), 1, 2, now, &model.Notification{BusinessID: 7})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkExpired_CommitsFlagAndNotification(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	n := &model.Notification{BusinessID: 7, Data: []byte(`{"code":"expired_items"}`), CreatedAt: now}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE inventory SET is_expired = TRUE WHERE id = \$1 AND is_expired = FALSE`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO notifications`).
		WithArgs(int64(7), n.Data, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.MarkExpired(context.Background(), 1, n)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkExpired_AlreadyFlagged(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE inventory SET is_expired = TRUE`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.MarkExpired(context.Background(), 1, &model.Notification{BusinessID: 7})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustQuantity_ClearsEvaluationStamp(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE inventory SET quantity = \$1, status_updated_at = NULL WHERE id = \$2`).
		WithArgs(2.5, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AdjustQuantity(context.Background(), 1, 2.5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM inventory WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, err := repo.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}
