package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/internal/pos"
	"github.com/fekuna/omnipos-backoffice-service/internal/pos/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const taxRate = 0.1

type orderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   orderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type orderPayload struct {
	OrderID    int64              `json:"order_id"`
	BusinessID int64              `json:"business_id"`
	Items      []orderItemPayload `json:"items"`
}

type orderItemPayload struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type posUseCase struct {
	repo     pos.Repository
	producer pos.Producer
	logger   logger.ZapLogger
}

func NewPosUseCase(repo pos.Repository, producer pos.Producer, log logger.ZapLogger) pos.UseCase {
	return &posUseCase{
		repo:     repo,
		producer: producer,
		logger:   log,
	}
}

func (uc *posUseCase) CreateTransaction(ctx context.Context, input *dto.CreateTransactionInput) (*dto.CreateTransactionResult, error) {
	if len(input.Order) == 0 {
		return nil, pos.ErrEmptyOrder
	}

	var subtotal float64
	for _, line := range input.Order {
		subtotal += line.Price * float64(line.Quantity)
	}
	tax := subtotal * taxRate
	total := subtotal + tax
	change := input.AmountPaid - total

	now := time.Now()
	paid := "paid"

	t := &model.Transaction{
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		CashAmount:      input.AmountPaid,
		ChangeAmount:    change,
		PaymentMethod:   input.PaymentMethod,
		Status:          "completed",
		TransactionDate: now,
		BusinessID:      input.BusinessID,
		UserID:          input.UserID,
		DiscountAmount:  0,
		PaymentStatus:   paid,
	}
	order := &model.Order{
		Amount:        total,
		BusinessID:    input.BusinessID,
		UserID:        input.UserID,
		OrderDate:     now,
		Status:        "preparing",
		PaymentStatus: &paid,
	}
	items := make([]model.OrderItem, 0, len(input.Order))
	for _, line := range input.Order {
		items = append(items, model.OrderItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			Price:      line.Price,
			Total:      line.Price * float64(line.Quantity),
		})
	}

	transactionID, orderID, err := uc.repo.CreateTransaction(ctx, t, order, items)
	if err != nil {
		return nil, err
	}

	uc.publishOrderCreated(ctx, orderID, input)

	uc.logger.Info("transaction created",
		zap.Int64("transaction_id", transactionID),
		zap.Int64("order_id", orderID),
		zap.Float64("total", total),
	)

	return &dto.CreateTransactionResult{
		Message:       "Transaction and order created successfully",
		TransactionID: transactionID,
		OrderID:       orderID,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		ChangeAmount:  change,
	}, nil
}

// publishOrderCreated hands the sold items to the inventory listener. A
// publish failure does not fail the sale; the stock drift surfaces on the
// next manual adjustment.
func (uc *posUseCase) publishOrderCreated(ctx context.Context, orderID int64, input *dto.CreateTransactionInput) {
	payloadItems := make([]orderItemPayload, 0, len(input.Order))
	for _, line := range input.Order {
		payloadItems = append(payloadItems, orderItemPayload{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	event := orderCreatedEvent{
		EventID:   uuid.NewString(),
		EventType: "OrderCreated",
		Payload: orderPayload{
			OrderID:    orderID,
			BusinessID: input.BusinessID,
			Items:      payloadItems,
		},
		Timestamp: time.Now(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("marshal OrderCreated event", zap.Error(err))
		return
	}

	key := []byte(fmt.Sprintf("%d", input.BusinessID))
	if err := uc.producer.Publish(ctx, key, value); err != nil {
		uc.logger.Error("publish OrderCreated event",
			zap.Int64("order_id", orderID),
			zap.Error(err),
		)
	}
}

func (uc *posUseCase) ListOrders(ctx context.Context, businessID int64) ([]model.Order, error) {
	return uc.repo.ListOrders(ctx, businessID)
}

func (uc *posUseCase) UpdateOrderStatus(ctx context.Context, orderID, businessID int64, status string) error {
	updated, err := uc.repo.UpdateOrderStatus(ctx, orderID, businessID, status)
	if err != nil {
		return err
	}
	if !updated {
		return pos.ErrOrderNotFound
	}
	return nil
}
