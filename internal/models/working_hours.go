package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingHours holds the studio schedule for one weekday (0 = Sunday).
// The seven rows together form the singleton schedule; PUT replaces
// them wholesale.
type WorkingHours struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Weekday int  `gorm:"uniqueIndex;not null" json:"weekday"`
	Enabled bool `json:"enabled"`

	StartTime string `gorm:"size:10" json:"start_time"`
	EndTime   string `gorm:"size:10" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WorkingHours) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
