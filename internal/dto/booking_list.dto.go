package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookingListDTO struct {
	ID            uuid.UUID `json:"id"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ServiceName   string    `json:"service_name"`
	Duration      int       `json:"duration"`
	Price         float64   `json:"price"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
}
