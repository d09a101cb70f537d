package model

import "time"

// SlotStateOpen is the current non-available state of a slot (hot table).
// Available slots have no row here.
type SlotStateOpen struct {
	SlotID     string    `gorm:"primaryKey;size:64"`
	ObservedAt time.Time `gorm:"not null"`
	Status     string    `gorm:"size:32;not null"`
}

// SlotStateHistory is the archived log of slot occupancy periods (cold
// table). A row is written when an observed state ends.
type SlotStateHistory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	SlotID      string    `gorm:"size:64;not null;index"`
	ObservedAt  time.Time `gorm:"not null;index"` // When the state's end was observed
	Status      string    `gorm:"size:32;not null"`
	PeriodStart time.Time `gorm:"not null"`
	PeriodEnd   time.Time `gorm:"not null"`
}
