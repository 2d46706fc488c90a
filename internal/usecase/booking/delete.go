package booking

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/audit"
	domain "github.com/serenetouch/booking-api/internal/domain/booking"
	"github.com/serenetouch/booking-api/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes a booking. Unlike service deletion there is no
// referential guard; historical cleanup is an explicit admin decision.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	adminID *uuid.UUID,
	bookingID uuid.UUID,
) error {

	err := uc.repo.DeleteBooking(ctx, bookingID)
	if err == gorm.ErrRecordNotFound {
		return httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: bookingID.String(),
	})

	return nil
}
