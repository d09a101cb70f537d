package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parking-zone-gateway/internal/model"
	"parking-zone-gateway/internal/upstream"
)

// Slot statuses as reported by the parking backend.
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
	StatusReserved  = "reserved"
)

// Store defines the persistence operations of the slot watcher.
type Store interface {
	UpsertBlocksAndSlots(ctx context.Context, slots []upstream.Slot) error
	// UpdateSlotStates diffs the snapshot against the open state records and
	// returns the IDs of slots that transitioned to available.
	UpdateSlotStates(ctx context.Context, now time.Time, slots []upstream.Slot) ([]string, error)
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying handle for the subscription endpoints and the
// notification workers.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// UpdateSlotStates processes state changes and updates the database
// transactionally. A slot with no open record is available; an open record
// holds its current occupied or reserved state.
func (s *gormStore) UpdateSlotStates(ctx context.Context, now time.Time, slots []upstream.Slot) ([]string, error) {
	currentOpenRecords, err := s.fetchAllOpenStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open slot state records: %w", err)
	}

	var becameAvailable []string

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, slot := range slots {
			oldRecord, exists := currentOpenRecords[slot.ID]

			if exists {
				if slot.Status != oldRecord.Status {
					if err := archiveRecord(tx, oldRecord, now); err != nil {
						return err
					}

					if slot.Status == StatusAvailable {
						if err := tx.Delete(&model.SlotStateOpen{}, "slot_id = ?", oldRecord.SlotID).Error; err != nil {
							return fmt.Errorf("failed to delete open state record for slot %s: %w", oldRecord.SlotID, err)
						}
						becameAvailable = append(becameAvailable, slot.ID)
					} else {
						updated := model.SlotStateOpen{SlotID: slot.ID, ObservedAt: now, Status: slot.Status}
						if err := tx.Save(&updated).Error; err != nil {
							return fmt.Errorf("failed to update open state record for slot %s: %w", slot.ID, err)
						}
					}
				}
				// Track which slots the feed still carries.
				delete(currentOpenRecords, slot.ID)
			} else if slot.Status != StatusAvailable && slot.Status != "" {
				newRecord := model.SlotStateOpen{SlotID: slot.ID, ObservedAt: now, Status: slot.Status}
				if err := tx.Create(&newRecord).Error; err != nil {
					return fmt.Errorf("failed to create open state record for slot %s: %w", slot.ID, err)
				}
			}
		}

		// Slots that were tracked but are no longer in the feed: close their
		// periods without notifying anyone.
		for _, remaining := range currentOpenRecords {
			if err := archiveRecord(tx, remaining, now); err != nil {
				return err
			}
			if err := tx.Delete(&model.SlotStateOpen{}, "slot_id = ?", remaining.SlotID).Error; err != nil {
				return fmt.Errorf("failed to delete open state record for slot %s: %w", remaining.SlotID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return becameAvailable, nil
}

// archiveRecord writes a history row for a state that just ended.
func archiveRecord(tx *gorm.DB, recordToArchive model.SlotStateOpen, observationTime time.Time) error {
	historyRecord := model.SlotStateHistory{
		SlotID:      recordToArchive.SlotID,
		ObservedAt:  observationTime,
		Status:      recordToArchive.Status,
		PeriodStart: recordToArchive.ObservedAt,
		PeriodEnd:   observationTime,
	}

	if err := tx.Create(&historyRecord).Error; err != nil {
		return fmt.Errorf("failed to archive state record for slot %s: %w", recordToArchive.SlotID, err)
	}
	return nil
}

// UpsertBlocksAndSlots handles the database updates for block and slot
// metadata.
func (s *gormStore) UpsertBlocksAndSlots(ctx context.Context, slots []upstream.Slot) error {
	existingSlots, err := s.fetchAllSlots(ctx)
	if err != nil {
		log.Printf("Warning: could not pre-fetch slots: %v", err)
		existingSlots = make(map[string]model.Slot)
	}

	if err := s.upsertBlocks(ctx, slots); err != nil {
		return fmt.Errorf("failed to process blocks: %w", err)
	}

	var slotsToUpsert []model.Slot
	for _, slot := range slots {
		if slot.Block.ID == "" {
			log.Printf("Warning: slot %s has no block, skipping", slot.ID)
			continue
		}
		record, needsUpsert := prepareSlot(slot, existingSlots)
		if needsUpsert {
			slotsToUpsert = append(slotsToUpsert, record)
		}
	}

	if len(slotsToUpsert) > 0 {
		log.Printf("Batch upserting %d slots...", len(slotsToUpsert))
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return batchUpsertSlots(tx, slotsToUpsert)
		})
	}
	return nil
}

func (s *gormStore) fetchAllOpenStates(ctx context.Context) (map[string]model.SlotStateOpen, error) {
	var openRecords []model.SlotStateOpen
	if err := s.db.WithContext(ctx).Find(&openRecords).Error; err != nil {
		return nil, err
	}
	recordMap := make(map[string]model.SlotStateOpen, len(openRecords))
	for _, r := range openRecords {
		recordMap[r.SlotID] = r
	}
	return recordMap, nil
}

func (s *gormStore) fetchAllSlots(ctx context.Context) (map[string]model.Slot, error) {
	var slots []model.Slot
	if err := s.db.WithContext(ctx).Find(&slots).Error; err != nil {
		return nil, err
	}
	slotMap := make(map[string]model.Slot, len(slots))
	for _, m := range slots {
		slotMap[m.ID] = m
	}
	return slotMap, nil
}

func (s *gormStore) upsertBlocks(ctx context.Context, slots []upstream.Slot) error {
	blocksToUpsert := make(map[string]model.Block)
	for _, slot := range slots {
		if slot.Block.ID == "" {
			continue
		}
		if _, exists := blocksToUpsert[slot.Block.ID]; !exists {
			blocksToUpsert[slot.Block.ID] = model.Block{ID: slot.Block.ID, Name: slot.Block.BlockName}
		}
	}

	if len(blocksToUpsert) == 0 {
		return nil
	}

	var blockList []model.Block
	for _, b := range blocksToUpsert {
		blockList = append(blockList, b)
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&blockList).Error
}

func prepareSlot(slot upstream.Slot, existingSlots map[string]model.Slot) (model.Slot, bool) {
	newSlot := model.Slot{
		ID:          slot.ID,
		BlockID:     slot.Block.ID,
		SlotNumber:  slot.SlotNumber,
		Floor:       slot.Floor,
		VehicleType: slot.VehicleType,
		RateType:    slot.RateType,
	}

	if oldSlot, exists := existingSlots[newSlot.ID]; exists {
		if oldSlot.BlockID == newSlot.BlockID &&
			oldSlot.SlotNumber == newSlot.SlotNumber &&
			oldSlot.Floor == newSlot.Floor &&
			oldSlot.VehicleType == newSlot.VehicleType &&
			oldSlot.RateType == newSlot.RateType {
			return newSlot, false
		}
	}
	return newSlot, true
}

func batchUpsertSlots(tx *gorm.DB, slots []model.Slot) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"block_id", "slot_number", "floor", "vehicle_type", "rate_type", "updated_at"}),
	}).Create(&slots).Error
}
