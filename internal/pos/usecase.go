package pos

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pos/dto"
	"github.com/pkg/errors"
)

var (
	ErrEmptyOrder    = errors.New("order cannot be empty")
	ErrOrderNotFound = errors.New("order not found")
)

// Producer publishes domain events. Satisfied by broker.KafkaProducer.
type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
}

type UseCase interface {
	// CreateTransaction computes the totals server side, persists the sale
	// and publishes an OrderCreated event for stock deduction.
	CreateTransaction(ctx context.Context, input *dto.CreateTransactionInput) (*dto.CreateTransactionResult, error)

	ListOrders(ctx context.Context, businessID int64) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, businessID int64, status string) error
}
