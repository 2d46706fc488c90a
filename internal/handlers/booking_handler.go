package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/httpresp"
	"github.com/serenetouch/booking-api/internal/middleware"
	ucBooking "github.com/serenetouch/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	get          *ucBooking.GetBooking
	list         *ucBooking.ListBookings
	updateStatus *ucBooking.UpdateStatus
	setPayment   *ucBooking.SetPayment
	delete       *ucBooking.DeleteBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	get *ucBooking.GetBooking,
	list *ucBooking.ListBookings,
	updateStatus *ucBooking.UpdateStatus,
	setPayment *ucBooking.SetPayment,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		get:          get,
		list:         list,
		updateStatus: updateStatus,
		setPayment:   setPayment,
		delete:       deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName   string `json:"client_name" binding:"required"`
	ClientEmail  string `json:"client_email" binding:"required,email"`
	ClientPhone  string `json:"client_phone" binding:"required"`
	ClientGender string `json:"client_gender" binding:"omitempty,oneof=male female other"`

	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Duration  int       `json:"duration" binding:"required,min=1"`

	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Location string `json:"location" binding:"required,oneof=studio home"`
	Notes    string `json:"notes"`

	PaymentMethod string `json:"payment_method"`
	WalletAddress string `json:"wallet_address"`
	Model         string `json:"model"`
}

type UpdateBookingRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}

// ======================================================
// CREATE (public booking form)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "crypto"
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		ClientGender:  req.ClientGender,
		ServiceID:     req.ServiceID,
		Duration:      req.Duration,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Notes:         req.Notes,
		PaymentMethod: paymentMethod,
		WalletAddress: req.WalletAddress,
		Model:         req.Model,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"),
			httperr.IsBusiness(err, "invalid_duration"):
			httperr.BadRequest(c, mustBusinessCode(err), "Invalid booking data.")
		case httperr.IsBusiness(err, "service_not_found"),
			httperr.IsBusiness(err, "service_unavailable"):
			httperr.BadRequest(c, mustBusinessCode(err), "Service is not available.")
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable", "The requested date or time is not bookable.")
		default:
			logrus.WithError(err).Error("failed to create booking")
			httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"booking_id": b.ID,
	})
}

// ======================================================
// GET (admin)
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		logrus.WithError(err).Error("failed to get booking")
		httperr.Internal(c, "failed_to_get_booking", "Failed to fetch booking.")
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// LIST (admin)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(
		c.Request.Context(),
		c.Query("status"),
		c.Query("date"),
	)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Invalid filter.")
			return
		}
		logrus.WithError(err).Error("failed to list bookings")
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// UPDATE (admin: status and/or payment status)
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	adminID := adminIDFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update data.")
		return
	}

	if req.Status == nil && req.PaymentStatus == nil {
		httperr.BadRequest(c, "no_fields_to_update", "Nothing to update.")
		return
	}

	if req.Status != nil {
		if _, err := h.updateStatus.Execute(c.Request.Context(), adminID, id, *req.Status); err != nil {
			writeBookingMutationError(c, err)
			return
		}
	}

	if req.PaymentStatus != nil {
		err := h.setPayment.Execute(c.Request.Context(), adminID, id, ucBooking.SetPaymentInput{
			Status: req.PaymentStatus,
		})
		if err != nil {
			writeBookingMutationError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// DELETE (admin)
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	adminID := adminIDFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), adminID, id); err != nil {
		writeBookingMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// HELPERS
// ======================================================

func adminIDFromContext(c *gin.Context) *uuid.UUID {
	if v, ok := c.Get(middleware.ContextAdminID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return &id
		}
	}
	return nil
}

func mustBusinessCode(err error) string {
	code, _ := httperr.BusinessCode(err)
	return code
}

func writeBookingMutationError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, "invalid_status"),
		httperr.IsBusiness(err, "invalid_payment_status"),
		httperr.IsBusiness(err, "no_fields_to_update"):
		httperr.BadRequest(c, mustBusinessCode(err), "Invalid update data.")
	case httperr.IsBusiness(err, "invalid_transition"):
		httperr.Conflict(c, "invalid_transition", "Status transition is not allowed.")
	default:
		logrus.WithError(err).Error("booking mutation failed")
		httperr.Internal(c, "failed_to_update_booking", "Failed to update booking.")
	}
}
