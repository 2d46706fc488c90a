package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenetouch/booking-api/internal/httperr"
)

func TestApplyChargeMarksPaidAndStoresPayload(t *testing.T) {
	db, repo, dispatcher := newTestDeps(t)
	svc := seedService(t, db)
	b := seedBooking(t, db, svc)
	uc := NewApplyCharge(repo, dispatcher)

	raw := []byte(`{"event":"charge.success","data":{"reference":"` + b.ID.String() + `","status":"success"}}`)
	require.NoError(t, uc.Execute(context.Background(), b.ID.String(), raw))

	stored := getBooking(t, db, b.ID)
	assert.Equal(t, "paid", stored.PaymentStatus)
	assert.JSONEq(t, string(raw), string(stored.PaymentDetails))

	// operational lifecycle is independent of the financial one
	assert.Equal(t, "pending", stored.Status)
}

func TestApplyChargeRedeliveryIsIdempotent(t *testing.T) {
	db, repo, dispatcher := newTestDeps(t)
	svc := seedService(t, db)
	b := seedBooking(t, db, svc)
	uc := NewApplyCharge(repo, dispatcher)

	raw := []byte(`{"event":"charge.success"}`)
	require.NoError(t, uc.Execute(context.Background(), b.ID.String(), raw))
	require.NoError(t, uc.Execute(context.Background(), b.ID.String(), raw))

	assert.Equal(t, "paid", getBooking(t, db, b.ID).PaymentStatus)
}

func TestApplyChargeRejectsMalformedReference(t *testing.T) {
	_, repo, dispatcher := newTestDeps(t)
	uc := NewApplyCharge(repo, dispatcher)

	err := uc.Execute(context.Background(), "ref-123", []byte(`{}`))
	assert.True(t, httperr.IsBusiness(err, "invalid_reference"))
}

func TestApplyChargeUnknownBooking(t *testing.T) {
	_, repo, dispatcher := newTestDeps(t)
	uc := NewApplyCharge(repo, dispatcher)

	err := uc.Execute(context.Background(), uuid.NewString(), []byte(`{}`))
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
