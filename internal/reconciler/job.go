package reconciler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrPassInProgress is returned when a pass is requested while the previous
// one is still running. The tick is skipped, never queued.
var ErrPassInProgress = errors.New("reconcile pass already in progress")

const lockKey = "lock:inventory:reconcile"

const codeExpiredItems = "expired_items"

// Locker is the advisory-lock slice of the redis client, used to keep
// passes from overlapping across worker instances.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

// Job runs the inventory reconciliation pass on a fixed interval: derive
// stock statuses from threshold rules, then flag expired batches, emitting
// one notification per change. Failures on one item never abort the pass.
type Job struct {
	store    Store
	locker   Locker // optional
	logger   logger.ZapLogger
	clock    clockwork.Clock
	interval time.Duration
	lockTTL  time.Duration

	slot sync.Mutex // single pass slot
	stop chan struct{}
	done chan struct{}
}

func NewJob(store Store, locker Locker, log logger.ZapLogger, clock clockwork.Clock, interval, lockTTL time.Duration) *Job {
	return &Job{
		store:    store,
		locker:   locker,
		logger:   log,
		clock:    clock,
		interval: interval,
		lockTTL:  lockTTL,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the schedule loop until Stop is called or ctx is cancelled.
func (j *Job) Start(ctx context.Context) {
	go func() {
		defer close(j.done)
		ticker := j.clock.NewTicker(j.interval)
		defer ticker.Stop()

		j.logger.Info("reconciler started", zap.Duration("interval", j.interval))
		for {
			select {
			case <-ctx.Done():
				return
			case <-j.stop:
				return
			case <-ticker.Chan():
				if err := j.RunPass(ctx); err != nil {
					if errors.Is(err, ErrPassInProgress) {
						j.logger.Warn("previous pass still running, tick skipped")
						continue
					}
					j.logger.Error("reconcile pass failed", zap.Error(err))
				}
			}
		}
	}()
}

// Stop ends the schedule loop and waits for it to exit. An in-flight pass
// finishes on its own.
func (j *Job) Stop() {
	close(j.stop)
	<-j.done
}

// RunPass executes one full pass: status evaluation over all eligible
// items, then the expiry scan. "now" is captured once and used for both.
func (j *Job) RunPass(ctx context.Context) error {
	if !j.slot.TryLock() {
		return ErrPassInProgress
	}
	defer j.slot.Unlock()

	if j.locker != nil {
		token := uuid.New().String()
		ok, err := j.locker.AcquireLock(ctx, lockKey, token, j.lockTTL)
		if err != nil {
			// Lock service down: run anyway, the in-process slot still
			// guards a single worker.
			j.logger.Warn("advisory lock unavailable", zap.Error(err))
		} else if !ok {
			return ErrPassInProgress
		} else {
			defer func() {
				if err := j.locker.ReleaseLock(ctx, lockKey, token); err != nil {
					j.logger.Warn("release advisory lock", zap.Error(err))
				}
			}()
		}
	}

	now := j.clock.Now().UTC()
	updated := j.evaluateStatuses(ctx, now)
	expired := j.expireItems(ctx, now)

	j.logger.Info("reconcile pass finished",
		zap.Time("pass_time", now),
		zap.Int("status_updates", updated),
		zap.Int("expired_items", expired),
	)
	return nil
}

func (j *Job) evaluateStatuses(ctx context.Context, now time.Time) int {
	rules, err := j.store.ActiveThresholds(ctx)
	if err != nil {
		j.logger.Error("load thresholds", zap.Error(err))
		return 0
	}
	if len(rules) == 0 {
		return 0
	}
	byUnit := GroupByUnit(rules)

	items, err := j.store.EligibleItems(ctx)
	if err != nil {
		j.logger.Error("load eligible items", zap.Error(err))
		return 0
	}

	updated := 0
	for _, item := range items {
		rule, ok := SelectRule(byUnit[item.UnitID], item.Quantity)
		if !ok {
			continue
		}

		n, err := statusNotification(item, rule, now)
		if err != nil {
			j.logger.Error("build status notification",
				zap.Int64("inventory_id", item.ID), zap.Error(err))
			continue
		}
		if err := j.store.ApplyStatus(ctx, item.ID, rule.StatusID, now, n); err != nil {
			j.logger.Error("apply status",
				zap.Int64("inventory_id", item.ID),
				zap.Int64("status_id", rule.StatusID),
				zap.Error(err))
			continue
		}
		updated++
	}
	return updated
}

func (j *Job) expireItems(ctx context.Context, now time.Time) int {
	items, err := j.store.ExpiredItems(ctx, now)
	if err != nil {
		j.logger.Error("load expired items", zap.Error(err))
		return 0
	}

	expired := 0
	for _, item := range items {
		n, err := expiryNotification(item, now)
		if err != nil {
			j.logger.Error("build expiry notification",
				zap.Int64("inventory_id", item.ID), zap.Error(err))
			continue
		}
		if err := j.store.MarkExpired(ctx, item.ID, n); err != nil {
			j.logger.Error("mark expired",
				zap.Int64("inventory_id", item.ID), zap.Error(err))
			continue
		}
		expired++
	}
	return expired
}

// itemSnapshot is the source-record copy embedded in notification payloads.
type itemSnapshot struct {
	InventoryID    int64      `json:"inventory_id"`
	BusinessID     int64      `json:"business_id"`
	IngredientName string     `json:"ingredient_name"`
	BatchNumber    string     `json:"batch_number"`
	Quantity       float64    `json:"quantity"`
	UnitID         int64      `json:"unit_id"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	NewStatusID    *int64     `json:"new_status_id,omitempty"`
	NewStatusCode  string     `json:"new_status_code,omitempty"`
}

func statusNotification(item model.InventoryItem, rule model.ThresholdRule, at time.Time) (*model.Notification, error) {
	statusID := rule.StatusID
	return buildNotification(item.BusinessID, at, model.NotificationPayload{
		Title: rule.StatusTitle,
		Code:  rule.StatusCode,
		Data: itemSnapshot{
			InventoryID:    item.ID,
			BusinessID:     item.BusinessID,
			IngredientName: item.IngredientName,
			BatchNumber:    item.BatchNumber,
			Quantity:       item.Quantity,
			UnitID:         item.UnitID,
			NewStatusID:    &statusID,
			NewStatusCode:  rule.StatusCode,
		},
	})
}

func expiryNotification(item model.InventoryItem, at time.Time) (*model.Notification, error) {
	return buildNotification(item.BusinessID, at, model.NotificationPayload{
		Title: "Expired Items",
		Code:  codeExpiredItems,
		Data: itemSnapshot{
			InventoryID:    item.ID,
			BusinessID:     item.BusinessID,
			IngredientName: item.IngredientName,
			BatchNumber:    item.BatchNumber,
			Quantity:       item.Quantity,
			UnitID:         item.UnitID,
			ExpirationDate: item.ExpirationDate,
		},
	})
}

func buildNotification(businessID int64, at time.Time, payload model.NotificationPayload) (*model.Notification, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal notification payload")
	}
	return &model.Notification{
		BusinessID: businessID,
		Data:       data,
		CreatedAt:  at,
	}, nil
}
