package reconciler

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore mimics the repository semantics the job relies on: the
// evaluated-once gate on ApplyStatus and the is_expired guard on
// MarkExpired.
type fakeStore struct {
	mu            sync.Mutex
	rules         []model.ThresholdRule
	items         map[int64]*model.InventoryItem
	notifications []*model.Notification
	ruleLoads     chan struct{}
}

func newFakeStore(rules []model.ThresholdRule, items ...*model.InventoryItem) *fakeStore {
	s := &fakeStore{
		rules:     rules,
		items:     make(map[int64]*model.InventoryItem),
		ruleLoads: make(chan struct{}, 16),
	}
	for _, item := range items {
		s.items[item.ID] = item
	}
	return s
}

func (s *fakeStore) ActiveThresholds(ctx context.Context) ([]model.ThresholdRule, error) {
	select {
	case s.ruleLoads <- struct{}{}:
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules, nil
}

func (s *fakeStore) EligibleItems(ctx context.Context) ([]model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var eligible []model.InventoryItem
	for _, item := range s.items {
		if item.StatusUpdatedAt == nil {
			eligible = append(eligible, *item)
		}
	}
	return eligible, nil
}

func (s *fakeStore) ApplyStatus(ctx context.Context, itemID, statusID int64, at time.Time, n *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.items[itemID]
	if item.StatusUpdatedAt != nil {
		return nil
	}
	item.StatusID = &statusID
	item.StatusUpdatedAt = &at
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *fakeStore) ExpiredItems(ctx context.Context, now time.Time) ([]model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expired []model.InventoryItem
	for _, item := range s.items {
		if item.IsExpired || item.ExpirationDate == nil {
			continue
		}
		if !item.ExpirationDate.After(now) {
			expired = append(expired, *item)
		}
	}
	return expired, nil
}

func (s *fakeStore) MarkExpired(ctx context.Context, itemID int64, n *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.items[itemID]
	if item.IsExpired {
		return nil
	}
	item.IsExpired = true
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *fakeStore) notificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notifications)
}

type fakeLocker struct {
	held bool
}

func (l *fakeLocker) AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return !l.held, nil
}

func (l *fakeLocker) ReleaseLock(ctx context.Context, key, value string) error {
	return nil
}

func newTestJob(store Store, locker Locker, clock clockwork.Clock) *Job {
	return NewJob(store, locker, logger.NewNop(), clock, time.Minute, 50*time.Second)
}

func TestRunPass_AppliesStatusOnce(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeStore(kgRules(),
		&model.InventoryItem{ID: 1, BusinessID: 7, UnitID: 1, Quantity: 5, IngredientName: "flour"},
	)
	job := newTestJob(store, nil, clock)

	require.NoError(t, job.RunPass(context.Background()))

	item := store.items[1]
	require.NotNil(t, item.StatusID)
	assert.Equal(t, int64(2), *item.StatusID)
	require.NotNil(t, item.StatusUpdatedAt)
	require.Equal(t, 1, store.notificationCount())

	var payload model.NotificationPayload
	require.NoError(t, json.Unmarshal(store.notifications[0].Data, &payload))
	assert.Equal(t, "low_stock", payload.Code)
	assert.Equal(t, int64(7), store.notifications[0].BusinessID)

	// The item is no longer eligible; a second pass must not touch it even
	// though its quantity still sits under the threshold.
	require.NoError(t, job.RunPass(context.Background()))
	assert.Equal(t, 1, store.notificationCount())
}

func TestRunPass_ZeroQuantityGoesOutOfStock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeStore(kgRules(),
		&model.InventoryItem{ID: 1, BusinessID: 7, UnitID: 1, Quantity: 0},
	)
	job := newTestJob(store, nil, clock)

	require.NoError(t, job.RunPass(context.Background()))

	item := store.items[1]
	require.NotNil(t, item.StatusID)
	assert.Equal(t, int64(3), *item.StatusID)
}

func TestRunPass_NoMatchingRuleLeavesItemEligible(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeStore(kgRules(),
		&model.InventoryItem{ID: 1, BusinessID: 7, UnitID: 1, Quantity: 100},
	)
	job := newTestJob(store, nil, clock)

	require.NoError(t, job.RunPass(context.Background()))

	item := store.items[1]
	assert.Nil(t, item.StatusID)
	assert.Nil(t, item.StatusUpdatedAt)
	assert.Equal(t, 0, store.notificationCount())
}

func TestRunPass_ExpiryScan(t *testing.T) {
	clock := clockwork.NewFakeClock()
	past := clock.Now().UTC().Add(-time.Hour)
	boundary := clock.Now().UTC()
	future := clock.Now().UTC().Add(time.Hour)

	store := newFakeStore(nil,
		&model.InventoryItem{ID: 1, BusinessID: 7, UnitID: 1, Quantity: 3, ExpirationDate: &past},
		&model.InventoryItem{ID: 2, BusinessID: 7, UnitID: 1, Quantity: 3, ExpirationDate: &boundary},
		&model.InventoryItem{ID: 3, BusinessID: 7, UnitID: 1, Quantity: 3, ExpirationDate: &future},
	)
	job := newTestJob(store, nil, clock)

	require.NoError(t, job.RunPass(context.Background()))

	assert.True(t, store.items[1].IsExpired)
	assert.True(t, store.items[2].IsExpired, "expiration_date == now is expired")
	assert.False(t, store.items[3].IsExpired)
	require.Equal(t, 2, store.notificationCount())

	var payload model.NotificationPayload
	require.NoError(t, json.Unmarshal(store.notifications[0].Data, &payload))
	assert.Equal(t, "expired_items", payload.Code)

	// Rerunning must not flag or notify again.
	require.NoError(t, job.RunPass(context.Background()))
	assert.Equal(t, 2, store.notificationCount())
}

func TestRunPass_SlotBlocksOverlap(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeStore(nil)
	job := newTestJob(store, nil, clock)

	job.slot.Lock()
	defer job.slot.Unlock()

	err := job.RunPass(context.Background())
	assert.ErrorIs(t, err, ErrPassInProgress)
}

func TestRunPass_AdvisoryLockHeldElsewhere(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeStore(kgRules(),
		&model.InventoryItem{ID: 1, BusinessID: 7, UnitID: 1, Quantity: 0},
	)
	job := newTestJob(store, &fakeLocker{held: true}, clock)

	err := job.RunPass(context.Background())
	assert.ErrorIs(t, err, ErrPassInProgress)
	assert.Equal(t, 0, store.notificationCount())
}

func TestStart_TickTriggersPass(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeStore(kgRules(),
		&model.InventoryItem{ID: 1, BusinessID: 7, UnitID: 1, Quantity: 5},
	)
	job := newTestJob(store, nil, clock)

	job.Start(context.Background())
	clock.BlockUntil(1)
	clock.Advance(time.Minute)

	select {
	case <-store.ruleLoads:
	case <-time.After(2 * time.Second):
		t.Fatal("pass did not run after tick")
	}

	job.Stop()
}
