package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parking-zone-gateway/internal/model"
	"parking-zone-gateway/internal/store"
)

// WatchedSlots serves the locally recorded state of a block's slots. With
// no query it reflects the latest poll; with `at` (RFC3339) it answers from
// the archived history instead.
func (h *Handler) WatchedSlots(c *gin.Context) {
	blockID := c.Param("block_id")
	db := h.store.DB()

	atParam := c.Query("at")
	if atParam == "" {
		currentSlotStates(c, db, blockID)
	} else {
		historicalSlotStates(c, db, blockID, atParam)
	}
}

// slotStateResponse is the flattened structure for the API response.
type slotStateResponse struct {
	model.Slot
	Status      string    `json:"status"`
	IsAvailable bool      `json:"isAvailable"`
	ObservedAt  time.Time `json:"observedAt"`
}

func currentSlotStates(c *gin.Context, db *gorm.DB, blockID string) {
	var slots []model.Slot
	if err := db.Preload("Block").Where("block_id = ?", blockID).Find(&slots).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve slots"})
		return
	}

	slotIDs := make([]string, len(slots))
	for i, s := range slots {
		slotIDs[i] = s.ID
	}
	var openStates []model.SlotStateOpen
	db.Where("slot_id IN ?", slotIDs).Find(&openStates)

	stateMap := make(map[string]model.SlotStateOpen)
	for _, s := range openStates {
		stateMap[s.SlotID] = s
	}

	var response []slotStateResponse
	for _, slot := range slots {
		if state, ok := stateMap[slot.ID]; ok {
			response = append(response, slotStateResponse{
				Slot:        slot,
				Status:      state.Status,
				IsAvailable: false, // A slot with an open state is never available.
				ObservedAt:  state.ObservedAt,
			})
		} else {
			response = append(response, slotStateResponse{
				Slot:        slot,
				Status:      store.StatusAvailable,
				IsAvailable: true,
				ObservedAt:  time.Now().UTC(),
			})
		}
	}
	c.JSON(http.StatusOK, response)
}

func historicalSlotStates(c *gin.Context, db *gorm.DB, blockID, atParam string) {
	at, err := time.Parse(time.RFC3339, atParam)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid 'at' timestamp format, use RFC3339"})
		return
	}

	var slots []model.Slot
	if err := db.Preload("Block").Where("block_id = ?", blockID).Find(&slots).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve slots"})
		return
	}

	var response []slotStateResponse
	for _, slot := range slots {
		var history model.SlotStateHistory
		// Last archived period covering or preceding the given instant.
		err := db.Where("slot_id = ? AND period_start <= ?", slot.ID, at).
			Order("period_start DESC").
			First(&history).Error

		if err == gorm.ErrRecordNotFound {
			continue // Nothing recorded for this slot at that time.
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "database error during historical lookup"})
			return
		}

		status := history.Status
		if history.PeriodEnd.Before(at) {
			// The recorded period had already ended; the slot was free.
			status = store.StatusAvailable
		}

		response = append(response, slotStateResponse{
			Slot:        slot,
			Status:      status,
			IsAvailable: status == store.StatusAvailable,
			ObservedAt:  history.PeriodStart,
		})
	}

	c.JSON(http.StatusOK, response)
}
