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

type TherapistHandler struct {
	db *gorm.DB
}

func NewTherapistHandler(db *gorm.DB) *TherapistHandler {
	return &TherapistHandler{db: db}
}

type TherapistRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone"`
	Specialties     []string `json:"specialties"`
	Bio             string   `json:"bio"`
	ExperienceYears int      `json:"experience_years"`
	Status          string   `json:"status" binding:"omitempty,oneof=active inactive"`
	Gender          string   `json:"gender" binding:"omitempty,oneof=male female"`
	Image           string   `json:"image"`
}

func (h *TherapistHandler) List(c *gin.Context) {
	var therapists []models.Therapist
	if err := h.db.
		Order("created_at DESC").
		Find(&therapists).Error; err != nil {
		logrus.WithError(err).Error("failed to list therapists")
		httperr.Internal(c, "failed_to_list_therapists", "Failed to list therapists.")
		return
	}

	c.JSON(http.StatusOK, therapists)
}

func (h *TherapistHandler) Create(c *gin.Context) {
	var req TherapistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and email are required.")
		return
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	t := models.Therapist{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialties:     datatypes.NewJSONType(req.Specialties),
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		Status:          status,
		Gender:          req.Gender,
		Image:           req.Image,
	}

	if err := h.db.Create(&t).Error; err != nil {
		logrus.WithError(err).Error("failed to create therapist")
		httperr.Internal(c, "failed_to_create_therapist", "Failed to create therapist.")
		return
	}

	c.JSON(http.StatusCreated, t)
}

func (h *TherapistHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_therapist_id", "Invalid therapist id.")
		return
	}

	var t models.Therapist
	if err := h.db.Where("id = ?", id).First(&t).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "therapist_not_found", "Therapist not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_therapist", "Failed to fetch therapist.")
		return
	}

	var req TherapistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and email are required.")
		return
	}

	t.Name = req.Name
	t.Email = req.Email
	t.Phone = req.Phone
	t.Specialties = datatypes.NewJSONType(req.Specialties)
	t.Bio = req.Bio
	t.ExperienceYears = req.ExperienceYears
	if req.Status != "" {
		t.Status = req.Status
	}
	t.Gender = req.Gender
	t.Image = req.Image

	if err := h.db.Save(&t).Error; err != nil {
		logrus.WithError(err).Error("failed to update therapist")
		httperr.Internal(c, "failed_to_update_therapist", "Failed to update therapist.")
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *TherapistHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_therapist_id", "Invalid therapist id.")
		return
	}

	res := h.db.Where("id = ?", id).Delete(&models.Therapist{})
	if res.Error != nil {
		logrus.WithError(res.Error).Error("failed to delete therapist")
		httperr.Internal(c, "failed_to_delete_therapist", "Failed to delete therapist.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "therapist_not_found", "Therapist not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
