package watch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"parking-zone-gateway/config"
	"parking-zone-gateway/internal/notification"
	"parking-zone-gateway/internal/store"
	"parking-zone-gateway/internal/upstream"
)

// mockStore is a mock implementation of the store.Store interface.
type mockStore struct {
	UpsertBlocksAndSlotsFunc func(ctx context.Context, slots []upstream.Slot) error
	UpdateSlotStatesFunc     func(ctx context.Context, now time.Time, slots []upstream.Slot) ([]string, error)
	DBFunc                   func() *gorm.DB
}

func (m *mockStore) UpsertBlocksAndSlots(ctx context.Context, slots []upstream.Slot) error {
	return m.UpsertBlocksAndSlotsFunc(ctx, slots)
}

func (m *mockStore) UpdateSlotStates(ctx context.Context, now time.Time, slots []upstream.Slot) ([]string, error) {
	return m.UpdateSlotStatesFunc(ctx, now, slots)
}

func (m *mockStore) DB() *gorm.DB {
	return m.DBFunc()
}

func TestPoller_DispatchesFreedSlots(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1) // one slot is expected to be dispatched

	// Mock upstream backend serving the slot feed.
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		resp := map[string]any{
			"status": "success",
			"count":  1,
			"data": []upstream.Slot{
				{ID: "s1", SlotNumber: "A-1", Status: store.StatusAvailable},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	mockStore := &mockStore{
		UpsertBlocksAndSlotsFunc: func(ctx context.Context, slots []upstream.Slot) error {
			assert.Len(t, slots, 1)
			return nil
		},
		UpdateSlotStatesFunc: func(ctx context.Context, now time.Time, slots []upstream.Slot) ([]string, error) {
			// Simulate that slot s1 became available.
			return []string{"s1"}, nil
		},
		DBFunc: func() *gorm.DB {
			return nil // Not needed for this test
		},
	}

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = server.URL
	cfg.Upstream.Timeout = 5 * time.Second
	cfg.Upstream.ServiceToken = "service-token"
	cfg.WorkerPool.Size = 1

	client := upstream.NewClient(&cfg.Upstream)
	service := NewService(cfg, client, mockStore)

	// Replace the real worker pool with one we can observe.
	mockWorkerPool := notification.NewWorkerPool(1, nil, nil)
	service.workerPool = mockWorkerPool

	var dispatchedID string
	go func() {
		for id := range mockWorkerPool.Jobs() {
			dispatchedID = id
			wg.Done()
		}
	}()

	service.PollOnce(context.Background())

	wg.Wait()
	assert.Equal(t, "s1", dispatchedID, "the freed slot must be handed to the worker pool")
	assert.Equal(t, "Bearer service-token", gotAuth, "the poller authenticates with the service token")
}

func TestPoller_FeedErrorKeepsState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"upstream down"}`, http.StatusBadGateway)
	}))
	defer server.Close()

	storeTouched := false
	mockStore := &mockStore{
		UpsertBlocksAndSlotsFunc: func(ctx context.Context, slots []upstream.Slot) error {
			storeTouched = true
			return nil
		},
		UpdateSlotStatesFunc: func(ctx context.Context, now time.Time, slots []upstream.Slot) ([]string, error) {
			storeTouched = true
			return nil, nil
		},
		DBFunc: func() *gorm.DB { return nil },
	}

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = server.URL
	cfg.Upstream.Timeout = 5 * time.Second
	cfg.WorkerPool.Size = 1

	service := NewService(cfg, upstream.NewClient(&cfg.Upstream), mockStore)
	service.PollOnce(context.Background())

	assert.False(t, storeTouched, "a failed fetch must not clear recorded state")
}
