package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServiceModel is a named staff variant offered for a service.
type ServiceModel struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Image  string `json:"image"`
}

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500;not null" json:"description"`

	Benefits datatypes.JSONType[[]string] `json:"benefits"`

	// Durations lists the offered session lengths in minutes; Prices maps
	// each offered duration to its price. Every priced duration must also
	// appear in Durations (validated on create/update).
	Durations datatypes.JSONType[[]int]           `json:"durations"`
	Prices    datatypes.JSONType[map[int]float64] `json:"prices"`

	Image     string                             `gorm:"size:255" json:"image"`
	Available bool                               `gorm:"default:true" json:"available"`
	Models    datatypes.JSONType[[]ServiceModel] `json:"models"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Service) OffersDuration(minutes int) bool {
	for _, d := range s.Durations.Data() {
		if d == minutes {
			return true
		}
	}
	return false
}

// PriceFor returns the price for the given duration from the
// authoritative duration->price mapping.
func (s *Service) PriceFor(minutes int) (float64, bool) {
	price, ok := s.Prices.Data()[minutes]
	return price, ok
}
