package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description" binding:"required"`
	Benefits    []string              `json:"benefits"`
	Durations   []int                 `json:"durations" binding:"required,min=1"`
	Prices      map[int]float64       `json:"prices" binding:"required"`
	Image       string                `json:"image"`
	Available   *bool                 `json:"available"`
	Models      []models.ServiceModel `json:"models"`
}

// pricedDurationsOffered rejects a price map naming a duration that is
// not in the offered duration list.
func (r *ServiceRequest) pricedDurationsOffered() bool {
	offered := map[int]bool{}
	for _, d := range r.Durations {
		offered[d] = true
	}
	for d := range r.Prices {
		if !offered[d] {
			return false
		}
	}
	return true
}

// --------- Handlers ---------

// ListPublic returns only bookable services for the public site.
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("available = ?", true).
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		logrus.WithError(err).Error("failed to list services")
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		logrus.WithError(err).Error("failed to list services")
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.Where("id = ?", id).First(&svc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Failed to fetch service.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields.")
		return
	}
	if len(req.Prices) == 0 || !req.pricedDurationsOffered() {
		httperr.BadRequest(c, "invalid_prices", "Every priced duration must be offered.")
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Benefits:    datatypes.NewJSONType(req.Benefits),
		Durations:   datatypes.NewJSONType(req.Durations),
		Prices:      datatypes.NewJSONType(req.Prices),
		Image:       req.Image,
		Available:   available,
		Models:      datatypes.NewJSONType(req.Models),
	}

	if err := h.db.Create(&svc).Error; err != nil {
		logrus.WithError(err).Error("failed to create service")
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"service_id": svc.ID,
		"service":    svc,
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.Where("id = ?", id).First(&svc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Failed to fetch service.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields.")
		return
	}
	if len(req.Prices) == 0 || !req.pricedDurationsOffered() {
		httperr.BadRequest(c, "invalid_prices", "Every priced duration must be offered.")
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Benefits = datatypes.NewJSONType(req.Benefits)
	svc.Durations = datatypes.NewJSONType(req.Durations)
	svc.Prices = datatypes.NewJSONType(req.Prices)
	svc.Image = req.Image
	svc.Models = datatypes.NewJSONType(req.Models)
	if req.Available != nil {
		svc.Available = *req.Available
	}

	if err := h.db.Save(&svc).Error; err != nil {
		logrus.WithError(err).Error("failed to update service")
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

// Delete refuses to remove a service that booked appointments still
// reference; the catalog keeps history intact and admins disable
// instead.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	var bookingCount int64
	if err := h.db.Model(&models.Booking{}).
		Where("service_id = ?", id).
		Count(&bookingCount).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}

	if bookingCount > 0 {
		httperr.Conflict(c, "service_has_bookings",
			"Cannot delete a service that has existing bookings. Consider disabling it instead.")
		return
	}

	res := h.db.Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		logrus.WithError(res.Error).Error("failed to delete service")
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
