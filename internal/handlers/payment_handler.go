package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/models"
	ucBooking "github.com/serenetouch/booking-api/internal/usecase/booking"
)

// PaymentHandler exposes the payment-centric admin view of bookings:
// listing payment records and the manual reconciliation edit (mark
// paid/failed, correct the customer's sending wallet address).
type PaymentHandler struct {
	db         *gorm.DB
	setPayment *ucBooking.SetPayment
}

func NewPaymentHandler(db *gorm.DB, setPayment *ucBooking.SetPayment) *PaymentHandler {
	return &PaymentHandler{db: db, setPayment: setPayment}
}

type UpdatePaymentRequest struct {
	Status        *string `json:"status,omitempty"`
	WalletAddress *string `json:"wallet_address,omitempty"`
}

func (h *PaymentHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Booking{})

	if status := c.Query("payment_status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var bookings []models.Booking
	if err := q.
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		logrus.WithError(err).Error("failed to list payments")
		httperr.Internal(c, "failed_to_list_payments", "Failed to list payments.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	adminID := adminIDFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_payment_id", "Invalid payment id.")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update data.")
		return
	}

	err = h.setPayment.Execute(c.Request.Context(), adminID, id, ucBooking.SetPaymentInput{
		Status:        req.Status,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		writeBookingMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
