package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BlockedDate removes a whole day (AllDay) or a list of named time
// slots on that day from the bookable calendar.
type BlockedDate struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Date   time.Time `gorm:"index;not null" json:"date"`
	Reason string    `gorm:"size:255" json:"reason"`
	AllDay bool      `json:"all_day"`

	TimeSlots datatypes.JSONType[[]string] `json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *BlockedDate) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
