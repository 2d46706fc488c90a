package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/models"
	"github.com/serenetouch/booking-api/internal/timezone"
)

// ScheduleHandler manages the bookable calendar: the weekly working
// hours singleton and the blocked-date list the Availability Guard
// consults.
type ScheduleHandler struct {
	db       *gorm.DB
	timezone string
}

func NewScheduleHandler(db *gorm.DB, tz string) *ScheduleHandler {
	return &ScheduleHandler{db: db, timezone: tz}
}

// --------- Requests ---------

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

type BlockDateRequest struct {
	Date      string   `json:"date" binding:"required"`
	Reason    string   `json:"reason"`
	AllDay    bool     `json:"all_day"`
	TimeSlots []string `json:"time_slots"`
}

// ======================================================
// WORKING HOURS
// ======================================================

func (h *ScheduleHandler) GetWorkingHours(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		logrus.WithError(err).Error("failed to get working hours")
		httperr.Internal(c, "failed_to_get_working_hours", "Failed to fetch working hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// UpdateWorkingHours replaces the whole weekly schedule; the set of
// rows is the singleton schedule document.
func (h *ScheduleHandler) UpdateWorkingHours(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule data.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.WorkingHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WorkingHours{
				Weekday:   d.Weekday,
				Enabled:   d.Enabled,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
			})
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("failed to save working hours")
		httperr.Internal(c, "failed_to_save_working_hours", "Failed to save working hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// BLOCKED DATES
// ======================================================

func (h *ScheduleHandler) ListBlockedDates(c *gin.Context) {
	var blocked []models.BlockedDate
	if err := h.db.
		Order("date ASC").
		Find(&blocked).Error; err != nil {
		logrus.WithError(err).Error("failed to list blocked dates")
		httperr.Internal(c, "failed_to_list_blocked_dates", "Failed to fetch blocked dates.")
		return
	}

	c.JSON(http.StatusOK, blocked)
}

func (h *ScheduleHandler) CreateBlockedDate(c *gin.Context) {
	var req BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid blocked-date data.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		req.Date,
		timezone.Location(h.timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	blocked := models.BlockedDate{
		Date:      date,
		Reason:    req.Reason,
		AllDay:    req.AllDay,
		TimeSlots: datatypes.NewJSONType(req.TimeSlots),
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		logrus.WithError(err).Error("failed to block date")
		httperr.Internal(c, "failed_to_block_date", "Failed to block date.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"blocked_date_id": blocked.ID,
	})
}

func (h *ScheduleHandler) DeleteBlockedDate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_blocked_date_id", "Invalid blocked-date id.")
		return
	}

	res := h.db.Where("id = ?", id).Delete(&models.BlockedDate{})
	if res.Error != nil {
		logrus.WithError(res.Error).Error("failed to unblock date")
		httperr.Internal(c, "failed_to_unblock_date", "Failed to unblock date.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_date_not_found", "Blocked date not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
