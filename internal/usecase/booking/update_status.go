package booking

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/audit"
	domain "github.com/serenetouch/booking-api/internal/domain/booking"
	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies an admin-initiated lifecycle transition. The value
// must be a member of the status enum and the edge must exist in the
// transition table; completed and cancelled are terminal.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	adminID *uuid.UUID,
	bookingID uuid.UUID,
	newStatus string,
) (*models.Booking, error) {

	to := domain.Status(newStatus)
	if !to.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.UpdateBookingStatus(ctx, bookingID, to)
	if err == gorm.ErrRecordNotFound {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: b.ID.String(),
		Metadata: map[string]any{"status": newStatus},
	})

	return b, nil
}
