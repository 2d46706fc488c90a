package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/audit"
	domain "github.com/serenetouch/booking-api/internal/domain/booking"
	"github.com/serenetouch/booking-api/internal/httperr"
	"gorm.io/datatypes"
)

// ApplyCharge reconciles a verified successful-charge gateway event
// against the booking named by its transaction reference.
type ApplyCharge struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApplyCharge(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ApplyCharge {
	return &ApplyCharge{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the referenced booking paid and stores the raw gateway
// payload for audit. The update is a plain field-set, so redelivering
// the same event is a no-op beyond rewriting identical values; the
// webhook path can only ever move payment_status towards paid, never
// away from it.
//
// A reference with no matching booking is logged as an anomaly and
// reported as such so the handler can still acknowledge the delivery.
func (uc *ApplyCharge) Execute(
	ctx context.Context,
	reference string,
	rawEvent []byte,
) error {

	id, err := uuid.Parse(reference)
	if err != nil {
		return httperr.ErrBusiness("invalid_reference")
	}

	err = uc.repo.UpdateBookingFields(ctx, id, map[string]any{
		"payment_status":  string(domain.PaymentPaid),
		"payment_details": datatypes.JSON(rawEvent),
	})
	if err == gorm.ErrRecordNotFound {
		logrus.WithField("reference", reference).
			Warn("charge event references unknown booking")
		return httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_reconciled",
		Entity:   "booking",
		EntityID: reference,
	})

	return nil
}
