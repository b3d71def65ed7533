package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/notification"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type notificationUseCase struct {
	repo   notification.Repository
	logger logger.ZapLogger
}

func NewNotificationUseCase(repo notification.Repository, log logger.ZapLogger) notification.UseCase {
	return &notificationUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *notificationUseCase) Emit(ctx context.Context, businessID int64, payload model.NotificationPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal notification payload")
	}
	return uc.repo.Create(ctx, &model.Notification{
		BusinessID: businessID,
		Data:       data,
		CreatedAt:  time.Now(),
	})
}

func (uc *notificationUseCase) Unseen(ctx context.Context, businessID int64, limit int) ([]model.Notification, error) {
	return uc.repo.ListUnseen(ctx, businessID, limit)
}

func (uc *notificationUseCase) AckAll(ctx context.Context, businessID int64) (int64, error) {
	count, err := uc.repo.MarkAllSeen(ctx, businessID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		uc.logger.Debug("notifications acknowledged",
			zap.Int64("business_id", businessID),
			zap.Int64("count", count),
		)
	}
	return count, nil
}
