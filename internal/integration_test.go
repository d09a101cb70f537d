package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parking-zone-gateway/config"
	"parking-zone-gateway/internal/db"
	"parking-zone-gateway/internal/model"
	"parking-zone-gateway/internal/store"
	"parking-zone-gateway/internal/upstream"
	"parking-zone-gateway/internal/watch"
)

type slotFeedEnvelope struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Data   []upstream.Slot `json:"data"`
}

// setupWatchTest wires a sqlite database, a mock slot feed and a watch
// service together. The returned setter controls what the feed serves on
// each successive poll.
func setupWatchTest(t *testing.T) (*gorm.DB, *watch.Service, func([][]upstream.Slot)) {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(testDB))
	for _, table := range []string{"subscription_slot_mapping", "push_subscriptions", "slot_state_opens", "slot_state_histories", "slots", "blocks"} {
		require.NoError(t, testDB.Exec("DELETE FROM "+table).Error)
	}

	var responses [][]upstream.Slot
	var responseIndex int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var slots []upstream.Slot
		if responseIndex < len(responses) {
			slots = responses[responseIndex]
			responseIndex++
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(slotFeedEnvelope{
			Status: "success",
			Count:  len(slots),
			Data:   slots,
		}))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = server.URL
	cfg.Upstream.ServiceToken = "service-token"
	cfg.WorkerPool.Size = 4

	client := upstream.NewClient(&cfg.Upstream)
	svc := watch.NewService(cfg, client, store.NewGormStore(testDB))

	setResponses := func(r [][]upstream.Slot) {
		responses = r
		responseIndex = 0
	}
	return testDB, svc, setResponses
}

func feedSlot(id, status string) upstream.Slot {
	return upstream.Slot{
		ID:          id,
		SlotNumber:  "A-" + id,
		Block:       upstream.Block{ID: "b1", BlockName: "Block A"},
		Floor:       2,
		VehicleType: "car",
		RateType:    "NORMAL",
		Status:      status,
	}
}

// TestSlotStateLifecycle drives a slot from occupied to available across two
// polls and verifies the open and history tables at each step.
func TestSlotStateLifecycle(t *testing.T) {
	testDB, svc, setResponses := setupWatchTest(t)

	setResponses([][]upstream.Slot{
		{feedSlot("s1", store.StatusOccupied)},
		{feedSlot("s1", store.StatusAvailable)},
	})

	// Cycle 1: the slot shows up occupied.
	svc.PollOnce(context.Background())

	var block model.Block
	require.NoError(t, testDB.First(&block, "id = ?", "b1").Error)
	assert.Equal(t, "Block A", block.Name)

	var slot model.Slot
	require.NoError(t, testDB.First(&slot, "id = ?", "s1").Error)
	assert.Equal(t, "A-s1", slot.SlotNumber)
	assert.Equal(t, 2, slot.Floor)

	var open model.SlotStateOpen
	require.NoError(t, testDB.First(&open, "slot_id = ?", "s1").Error)
	assert.Equal(t, store.StatusOccupied, open.Status)
	assert.WithinDuration(t, time.Now().UTC(), open.ObservedAt, 5*time.Second)
	firstObservedAt := open.ObservedAt

	var historyCount int64
	testDB.Model(&model.SlotStateHistory{}).Count(&historyCount)
	assert.Zero(t, historyCount)

	// Cycle 2: the slot frees up.
	svc.PollOnce(context.Background())

	var openCount int64
	testDB.Model(&model.SlotStateOpen{}).Where("slot_id = ?", "s1").Count(&openCount)
	assert.Zero(t, openCount, "open state should be cleared once the slot is available")

	var history model.SlotStateHistory
	require.NoError(t, testDB.First(&history, "slot_id = ?", "s1").Error)
	assert.Equal(t, store.StatusOccupied, history.Status)
	assert.Equal(t, firstObservedAt.Unix(), history.PeriodStart.Unix())
	assert.True(t, history.PeriodEnd.After(history.PeriodStart) || history.PeriodEnd.Equal(history.PeriodStart))
}

// TestSlotDisappearsFromFeed verifies a slot dropped from the feed has its
// open state archived without a notification.
func TestSlotDisappearsFromFeed(t *testing.T) {
	testDB, svc, setResponses := setupWatchTest(t)

	setResponses([][]upstream.Slot{
		{feedSlot("s2", store.StatusReserved)},
		{},
	})

	svc.PollOnce(context.Background())

	var open model.SlotStateOpen
	require.NoError(t, testDB.First(&open, "slot_id = ?", "s2").Error)
	assert.Equal(t, store.StatusReserved, open.Status)

	svc.PollOnce(context.Background())

	var openCount int64
	testDB.Model(&model.SlotStateOpen{}).Where("slot_id = ?", "s2").Count(&openCount)
	assert.Zero(t, openCount)

	var history model.SlotStateHistory
	require.NoError(t, testDB.First(&history, "slot_id = ?", "s2").Error)
	assert.Equal(t, store.StatusReserved, history.Status)
}
