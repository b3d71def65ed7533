package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/internal/pos"
	"github.com/fekuna/omnipos-backoffice-service/internal/pos/dto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePosRepo struct {
	transaction *model.Transaction
	order       *model.Order
	items       []model.OrderItem
	updated     map[int64]string
}

func (r *fakePosRepo) CreateTransaction(ctx context.Context, t *model.Transaction, order *model.Order, items []model.OrderItem) (int64, int64, error) {
	r.transaction = t
	r.order = order
	r.items = items
	return 10, 20, nil
}

func (r *fakePosRepo) ListOrders(ctx context.Context, businessID int64) ([]model.Order, error) {
	return nil, nil
}

func (r *fakePosRepo) UpdateOrderStatus(ctx context.Context, orderID, businessID int64, status string) (bool, error) {
	if r.updated == nil {
		r.updated = make(map[int64]string)
	}
	if orderID == 404 {
		return false, nil
	}
	r.updated[orderID] = status
	return true, nil
}

type fakeProducer struct {
	published [][]byte
	err       error
}

func (p *fakeProducer) Publish(ctx context.Context, key, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, value)
	return nil
}

func TestCreateTransaction_ComputesTotals(t *testing.T) {
	repo := &fakePosRepo{}
	producer := &fakeProducer{}
	uc := NewPosUseCase(repo, producer, logger.NewNop())

	result, err := uc.CreateTransaction(context.Background(), &dto.CreateTransactionInput{
		Order: []dto.OrderLine{
			{MenuItemID: 1, Quantity: 2, Price: 10}, // 20
			{MenuItemID: 2, Quantity: 1, Price: 5},  // 5
		},
		PaymentMethod: "cash",
		AmountPaid:    30,
		BusinessID:    7,
		UserID:        1,
	})
	require.NoError(t, err)

	assert.Equal(t, 25.0, result.Subtotal)
	assert.InDelta(t, 2.5, result.Tax, 1e-9)
	assert.InDelta(t, 27.5, result.Total, 1e-9)
	assert.InDelta(t, 2.5, result.ChangeAmount, 1e-9)
	assert.Equal(t, int64(10), result.TransactionID)
	assert.Equal(t, int64(20), result.OrderID)

	require.NotNil(t, repo.transaction)
	assert.Equal(t, "completed", repo.transaction.Status)
	assert.Equal(t, "paid", repo.transaction.PaymentStatus)
	require.NotNil(t, repo.order)
	assert.Equal(t, "preparing", repo.order.Status)
	require.Len(t, repo.items, 2)
	assert.Equal(t, 20.0, repo.items[0].Total)
}

func TestCreateTransaction_PublishesOrderCreated(t *testing.T) {
	repo := &fakePosRepo{}
	producer := &fakeProducer{}
	uc := NewPosUseCase(repo, producer, logger.NewNop())

	_, err := uc.CreateTransaction(context.Background(), &dto.CreateTransactionInput{
		Order:      []dto.OrderLine{{MenuItemID: 3, Quantity: 4, Price: 2}},
		AmountPaid: 10,
		BusinessID: 7,
		UserID:     1,
	})
	require.NoError(t, err)
	require.Len(t, producer.published, 1)

	var event orderCreatedEvent
	require.NoError(t, json.Unmarshal(producer.published[0], &event))
	assert.Equal(t, "OrderCreated", event.EventType)
	assert.Equal(t, int64(20), event.Payload.OrderID)
	assert.Equal(t, int64(7), event.Payload.BusinessID)
	require.Len(t, event.Payload.Items, 1)
	assert.Equal(t, int64(3), event.Payload.Items[0].MenuItemID)
	assert.Equal(t, 4, event.Payload.Items[0].Quantity)
}

func TestCreateTransaction_EmptyOrder(t *testing.T) {
	uc := NewPosUseCase(&fakePosRepo{}, &fakeProducer{}, logger.NewNop())

	_, err := uc.CreateTransaction(context.Background(), &dto.CreateTransactionInput{BusinessID: 7})
	assert.ErrorIs(t, err, pos.ErrEmptyOrder)
}

func TestCreateTransaction_PublishFailureDoesNotFailSale(t *testing.T) {
	repo := &fakePosRepo{}
	producer := &fakeProducer{err: errors.New("broker down")}
	uc := NewPosUseCase(repo, producer, logger.NewNop())

	result, err := uc.CreateTransaction(context.Background(), &dto.CreateTransactionInput{
		Order:      []dto.OrderLine{{MenuItemID: 1, Quantity: 1, Price: 10}},
		AmountPaid: 20,
		BusinessID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.TransactionID)
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	uc := NewPosUseCase(&fakePosRepo{}, &fakeProducer{}, logger.NewNop())

	err := uc.UpdateOrderStatus(context.Background(), 404, 7, "served")
	assert.ErrorIs(t, err, pos.ErrOrderNotFound)
}

func TestUpdateOrderStatus_Updates(t *testing.T) {
	repo := &fakePosRepo{}
	uc := NewPosUseCase(repo, &fakeProducer{}, logger.NewNop())

	err := uc.UpdateOrderStatus(context.Background(), 20, 7, "served")
	require.NoError(t, err)
	assert.Equal(t, "served", repo.updated[20])
}
