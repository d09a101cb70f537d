package model

import "time"

// Slot mirrors an upstream parking slot's metadata.
type Slot struct {
	ID          string `gorm:"primaryKey;size:64"` // Upstream ID
	BlockID     string `gorm:"index;size:64;not null"`
	SlotNumber  string `gorm:"size:32;not null"`
	Floor       int
	VehicleType string `gorm:"size:32"`
	RateType    string `gorm:"size:32"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Associations
	Block Block `gorm:"constraint:OnDelete:CASCADE"`
}
