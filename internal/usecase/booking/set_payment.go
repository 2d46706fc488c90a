package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/audit"
	domain "github.com/serenetouch/booking-api/internal/domain/booking"
	"github.com/serenetouch/booking-api/internal/httperr"
)

// SetPaymentInput carries an explicit admin payment edit. Both fields
// are optional, but at least one must be set. A wallet-address edit is
// a metadata correction and never touches payment_status.
type SetPaymentInput struct {
	Status        *string
	WalletAddress *string
}

type SetPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetPayment {
	return &SetPayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetPayment) Execute(
	ctx context.Context,
	adminID *uuid.UUID,
	bookingID uuid.UUID,
	in SetPaymentInput,
) error {

	fields := map[string]any{}

	if in.Status != nil {
		if !domain.PaymentStatus(*in.Status).Valid() {
			return httperr.ErrBusiness("invalid_payment_status")
		}
		fields["payment_status"] = *in.Status
	}

	if in.WalletAddress != nil {
		fields["wallet_address"] = strings.TrimSpace(*in.WalletAddress)
	}

	if len(fields) == 0 {
		return httperr.ErrBusiness("no_fields_to_update")
	}

	err := uc.repo.UpdateBookingFields(ctx, bookingID, fields)
	if err == gorm.ErrRecordNotFound {
		return httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "payment_updated",
		Entity:   "booking",
		EntityID: bookingID.String(),
		Metadata: in,
	})

	return nil
}
