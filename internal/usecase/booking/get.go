package booking

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/serenetouch/booking-api/internal/domain/booking"
	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
