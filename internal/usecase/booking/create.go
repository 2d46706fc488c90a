package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/serenetouch/booking-api/internal/audit"
	domain "github.com/serenetouch/booking-api/internal/domain/booking"
	"github.com/serenetouch/booking-api/internal/domain/schedule"
	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/models"
	"github.com/serenetouch/booking-api/internal/timezone"
	"github.com/serenetouch/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientName   string
	ClientEmail  string
	ClientPhone  string
	ClientGender string

	ServiceID uuid.UUID
	Duration  int

	Date     string
	Time     string
	Location string
	Notes    string

	PaymentMethod string
	WalletAddress string
	Model         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// Execute validates the request against the service catalog and the
// availability guard, snapshots the authoritative service name and
// price, and creates the booking together with the client upsert.
//
// Client-submitted price or service name is never trusted; both are
// re-derived from the catalog here.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(uc.timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Available {
		return nil, httperr.ErrBusiness("service_unavailable")
	}

	if !svc.OffersDuration(in.Duration) {
		return nil, httperr.ErrBusiness("invalid_duration")
	}
	price, ok := svc.PriceFor(in.Duration)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	hours, err := uc.repo.ListWorkingHours(ctx)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timezone.DayWindow(date, uc.timezone)
	blocked, err := uc.repo.ListBlockedDatesOn(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	if !schedule.Available(hours, blocked, date, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	b := &models.Booking{
		ClientName:   in.ClientName,
		ClientEmail:  validators.Normalize(in.ClientEmail),
		ClientPhone:  in.ClientPhone,
		ClientGender: in.ClientGender,

		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Duration:    in.Duration,
		Price:       price,

		Date:     date,
		Time:     in.Time,
		Location: in.Location,
		Notes:    in.Notes,
		Model:    in.Model,

		WalletAddress: in.WalletAddress,

		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.InitialPaymentStatus()),
		PaymentMethod: in.PaymentMethod,
	}

	if err := uc.repo.CreateBookingWithClient(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID.String(),
	})

	return b, nil
}
