package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/models"
	"github.com/serenetouch/booking-api/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type UpdateClientRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone  *string `json:"phone,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("search")))

	q := h.db.Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("last_visit DESC").
		Find(&clients).Error; err != nil {
		logrus.WithError(err).Error("failed to list clients")
		httperr.Internal(c, "failed_to_list_clients", "Failed to list clients.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ======================================================
// GET (with booking history)
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Invalid client id.")
		return
	}

	var client models.Client
	if err := h.db.Where("id = ?", id).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Failed to fetch client.")
		return
	}

	var bookings []models.Booking
	if err := h.db.
		Where("client_email = ?", client.Email).
		Order("date DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_get_client", "Failed to fetch client history.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":   client,
		"bookings": bookings,
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Invalid client id.")
		return
	}

	var client models.Client
	if err := h.db.Where("id = ?", id).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Failed to fetch client.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid client data.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = validators.Normalize(*req.Email)
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Gender != nil {
		client.Gender = *req.Gender
	}

	if err := h.db.Save(&client).Error; err != nil {
		logrus.WithError(err).Error("failed to update client")
		httperr.Internal(c, "failed_to_update_client", "Failed to update client.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE (refused while bookings reference the email)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Invalid client id.")
		return
	}

	var client models.Client
	if err := h.db.Where("id = ?", id).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Failed to fetch client.")
		return
	}

	var bookingCount int64
	if err := h.db.Model(&models.Booking{}).
		Where("client_email = ?", client.Email).
		Count(&bookingCount).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Failed to delete client.")
		return
	}

	if bookingCount > 0 {
		httperr.Conflict(c, "client_has_bookings",
			"Cannot delete a client with existing bookings.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		logrus.WithError(err).Error("failed to delete client")
		httperr.Internal(c, "failed_to_delete_client", "Failed to delete client.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
