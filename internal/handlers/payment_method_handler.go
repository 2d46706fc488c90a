package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/models"
)

type PaymentMethodHandler struct {
	db *gorm.DB
}

func NewPaymentMethodHandler(db *gorm.DB) *PaymentMethodHandler {
	return &PaymentMethodHandler{db: db}
}

type PaymentMethodRequest struct {
	Name         string         `json:"name" binding:"required"`
	Type         string         `json:"type" binding:"required"`
	Enabled      *bool          `json:"enabled"`
	Details      map[string]any `json:"details"`
	Instructions string         `json:"instructions"`
	DisplayOrder int            `json:"display_order"`
}

// ListPublic returns only enabled methods for the payment screen.
func (h *PaymentMethodHandler) ListPublic(c *gin.Context) {
	var methods []models.PaymentMethod
	if err := h.db.
		Where("enabled = ?", true).
		Order("display_order ASC").
		Find(&methods).Error; err != nil {
		logrus.WithError(err).Error("failed to list payment methods")
		httperr.Internal(c, "failed_to_list_payment_methods", "Failed to list payment methods.")
		return
	}

	c.JSON(http.StatusOK, methods)
}

func (h *PaymentMethodHandler) List(c *gin.Context) {
	var methods []models.PaymentMethod
	if err := h.db.
		Order("display_order ASC").
		Find(&methods).Error; err != nil {
		logrus.WithError(err).Error("failed to list payment methods")
		httperr.Internal(c, "failed_to_list_payment_methods", "Failed to list payment methods.")
		return
	}

	c.JSON(http.StatusOK, methods)
}

func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and type are required.")
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	details, err := detailsJSON(req.Details)
	if err != nil {
		httperr.BadRequest(c, "invalid_details", "Invalid details payload.")
		return
	}

	m := models.PaymentMethod{
		Name:         req.Name,
		Type:         req.Type,
		Enabled:      enabled,
		Details:      details,
		Instructions: req.Instructions,
		DisplayOrder: req.DisplayOrder,
	}

	if err := h.db.Create(&m).Error; err != nil {
		logrus.WithError(err).Error("failed to create payment method")
		httperr.Internal(c, "failed_to_create_payment_method", "Failed to create payment method.")
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_payment_method_id", "Invalid payment method id.")
		return
	}

	var m models.PaymentMethod
	if err := h.db.Where("id = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "payment_method_not_found", "Payment method not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_payment_method", "Failed to fetch payment method.")
		return
	}

	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and type are required.")
		return
	}

	details, err := detailsJSON(req.Details)
	if err != nil {
		httperr.BadRequest(c, "invalid_details", "Invalid details payload.")
		return
	}

	m.Name = req.Name
	m.Type = req.Type
	if req.Enabled != nil {
		m.Enabled = *req.Enabled
	}
	m.Details = details
	m.Instructions = req.Instructions
	m.DisplayOrder = req.DisplayOrder

	if err := h.db.Save(&m).Error; err != nil {
		logrus.WithError(err).Error("failed to update payment method")
		httperr.Internal(c, "failed_to_update_payment_method", "Failed to update payment method.")
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_payment_method_id", "Invalid payment method id.")
		return
	}

	res := h.db.Where("id = ?", id).Delete(&models.PaymentMethod{})
	if res.Error != nil {
		logrus.WithError(res.Error).Error("failed to delete payment method")
		httperr.Internal(c, "failed_to_delete_payment_method", "Failed to delete payment method.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "payment_method_not_found", "Payment method not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func detailsJSON(details map[string]any) (datatypes.JSON, error) {
	if details == nil {
		return datatypes.JSON("{}"), nil
	}
	b, err := json.Marshal(details)
	return datatypes.JSON(b), err
}
