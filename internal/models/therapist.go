package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Therapist struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`

	Specialties datatypes.JSONType[[]string] `json:"specialties"`

	Bio             string `gorm:"size:1000" json:"bio"`
	ExperienceYears int    `json:"experience_years"`
	Status          string `gorm:"size:20;default:'active'" json:"status"`
	Gender          string `gorm:"size:10" json:"gender"`
	Image           string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Therapist) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
