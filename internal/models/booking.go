package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking ties a client, a service snapshot and a time slot to two
// independent lifecycle states: Status (operational) and PaymentStatus
// (financial). The client and service fields are copied at creation
// time so later catalog or profile edits never alter past bookings.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientName   string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail  string `gorm:"size:100;not null;index" json:"client_email"`
	ClientPhone  string `gorm:"size:30" json:"client_phone"`
	ClientGender string `gorm:"size:10" json:"client_gender"`

	ServiceID   uuid.UUID `gorm:"type:uuid;index" json:"service_id"`
	ServiceName string    `gorm:"size:100" json:"service_name"`
	Duration    int       `json:"duration"`
	Price       float64   `json:"price"`

	Date     time.Time `gorm:"index" json:"date"`
	Time     string    `gorm:"size:20" json:"time"`
	Location string    `gorm:"size:20" json:"location"`
	Notes    string    `gorm:"size:500" json:"notes"`

	// Model is the therapist variant chosen on the booking form, if any.
	Model string `gorm:"size:100" json:"model,omitempty"`

	// WalletAddress is the customer-supplied sending address used for
	// manual payment reconciliation.
	WalletAddress string `gorm:"size:120" json:"wallet_address,omitempty"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`
	PaymentMethod string `gorm:"size:30" json:"payment_method"`

	// PaymentDetails holds the raw gateway event payload for audit.
	PaymentDetails datatypes.JSON `json:"payment_details,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
