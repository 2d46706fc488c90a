package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/serenetouch/booking-api/internal/models"
)

// ListFilter narrows a booking listing. DayStart/DayEnd carry the
// [start, end) bounds of one business-timezone calendar day; both are
// set together or not at all.
type ListFilter struct {
	Status   string
	DayStart *time.Time
	DayEnd   *time.Time
}

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	// -------- Booking (create) --------

	// CreateBookingWithClient inserts the booking and upserts the
	// email-keyed client profile from the booking's snapshot fields in
	// a single transaction.
	CreateBookingWithClient(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------

	// UpdateBookingStatus applies a validated lifecycle transition
	// under a row lock, touching only status and updated_at.
	UpdateBookingStatus(
		ctx context.Context,
		id uuid.UUID,
		to Status,
	) (*models.Booking, error)

	// UpdateBookingFields sets exactly the named fields on one booking.
	UpdateBookingFields(
		ctx context.Context,
		id uuid.UUID,
		fields map[string]any,
	) error

	DeleteBooking(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Availability --------
	ListWorkingHours(
		ctx context.Context,
	) ([]models.WorkingHours, error)

	ListBlockedDatesOn(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.BlockedDate, error)
}
