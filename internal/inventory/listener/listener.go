package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/inventory"
	"github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"go.uber.org/zap"
)

// InventoryListener consumes OrderCreated events and deducts the sold
// ingredients from stock. Deduction clears the evaluated-once gate, so the
// reconciler re-derives the batch status on its next pass.
type InventoryListener struct {
	consumer *broker.KafkaConsumer
	uc       inventory.UseCase
	logger   logger.ZapLogger
}

func NewInventoryListener(consumer *broker.KafkaConsumer, uc inventory.UseCase, logger logger.ZapLogger) *InventoryListener {
	return &InventoryListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *InventoryListener) Start(ctx context.Context) {
	l.logger.Info("Starting Inventory Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Inventory Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				// Don't log context canceled error as error
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	OrderID    int64              `json:"order_id"`
	BusinessID int64              `json:"business_id"`
	Items      []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

func (l *InventoryListener) processMessage(ctx context.Context, value []byte) {
	var event OrderCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "OrderCreated" {
		return
	}

	l.logger.Info("Processing OrderCreated event", zap.Int64("order_id", event.Payload.OrderID))

	items := make([]dto.OrderDeductionItem, 0, len(event.Payload.Items))
	for _, item := range event.Payload.Items {
		items = append(items, dto.OrderDeductionItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	err := l.uc.DeductForOrder(ctx, &dto.OrderDeductionInput{
		BusinessID: event.Payload.BusinessID,
		OrderID:    event.Payload.OrderID,
		Items:      items,
	})
	if err != nil {
		l.logger.Error("Failed to deduct inventory for order",
			zap.Int64("order_id", event.Payload.OrderID),
			zap.Error(err),
		)
	}
}
