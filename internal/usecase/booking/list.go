package booking

import (
	"context"
	"time"

	domain "github.com/serenetouch/booking-api/internal/domain/booking"
	"github.com/serenetouch/booking-api/internal/dto"
	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/timezone"
)

type ListBookings struct {
	repo     domain.Repository
	timezone string
}

func NewListBookings(repo domain.Repository, tz string) *ListBookings {
	return &ListBookings{
		repo:     repo,
		timezone: tz,
	}
}

// Execute lists bookings ordered by date then time slot. An optional
// status filter must be a valid enum member; an optional date filter
// ("2006-01-02") matches the whole calendar day.
func (uc *ListBookings) Execute(
	ctx context.Context,
	status string,
	dateStr string,
) ([]dto.BookingListDTO, error) {

	filter := domain.ListFilter{}

	if status != "" {
		if !domain.Status(status).Valid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		filter.Status = status
	}

	if dateStr != "" {
		date, err := time.ParseInLocation(
			"2006-01-02",
			dateStr,
			timezone.Location(uc.timezone),
		)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		dayStart, dayEnd := timezone.DayWindow(date, uc.timezone)
		filter.DayStart = &dayStart
		filter.DayEnd = &dayEnd
	}

	bookings, err := uc.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:            b.ID,
			Date:          b.Date,
			Time:          b.Time,
			ClientName:    b.ClientName,
			ClientEmail:   b.ClientEmail,
			ServiceName:   b.ServiceName,
			Duration:      b.Duration,
			Price:         b.Price,
			Location:      b.Location,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
		})
	}

	return out, nil
}
