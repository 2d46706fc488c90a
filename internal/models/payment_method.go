package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethod describes one way customers can pay (crypto wallet,
// cash app, bank transfer...). Details carries the method-specific
// fields as free-form JSON.
type PaymentMethod struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Type    string `gorm:"size:30;not null" json:"type"`
	Enabled bool   `gorm:"default:true" json:"enabled"`

	Details      datatypes.JSON `json:"details"`
	Instructions string         `gorm:"size:500" json:"instructions"`
	DisplayOrder int            `json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
