package model

import "time"

// Block mirrors an upstream parking block for the watch store.
type Block struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Name      string    `gorm:"size:128;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Associations
	Slots []Slot `gorm:"foreignKey:BlockID"`
}
