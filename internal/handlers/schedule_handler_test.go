package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/models"
)

func newScheduleRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	h := NewScheduleHandler(db, testTZ)

	r := gin.New()
	r.GET("/api/admin/schedule/hours", h.GetWorkingHours)
	r.PUT("/api/admin/schedule/hours", h.UpdateWorkingHours)
	r.POST("/api/admin/schedule/blocked", h.CreateBlockedDate)
	r.DELETE("/api/admin/schedule/blocked/:id", h.DeleteBlockedDate)
	return r
}

func TestUpdateWorkingHoursReplacesSchedule(t *testing.T) {
	db := newHandlerDB(t)
	require.NoError(t, db.Create(&models.WorkingHours{
		Weekday: 6, Enabled: true, StartTime: "10:00", EndTime: "14:00",
	}).Error)
	r := newScheduleRouter(t, db)

	w := doJSON(t, r, http.MethodPut, "/api/admin/schedule/hours", gin.H{
		"days": []gin.H{
			{"weekday": 1, "enabled": true, "start_time": "09:00", "end_time": "18:00"},
			{"weekday": 2, "enabled": false},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var hours []models.WorkingHours
	require.NoError(t, db.Order("weekday ASC").Find(&hours).Error)
	require.Len(t, hours, 2)
	assert.Equal(t, 1, hours[0].Weekday)
	assert.Equal(t, "09:00", hours[0].StartTime)
	assert.False(t, hours[1].Enabled)
}

func TestCreateBlockedDate(t *testing.T) {
	db := newHandlerDB(t)
	r := newScheduleRouter(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/admin/schedule/blocked", gin.H{
		"date":       "2026-03-09",
		"reason":     "maintenance",
		"all_day":    false,
		"time_slots": []string{"10:00", "11:00"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var blocked models.BlockedDate
	require.NoError(t, db.First(&blocked).Error)
	assert.False(t, blocked.AllDay)
	assert.Equal(t, []string{"10:00", "11:00"}, blocked.TimeSlots.Data())
}

func TestCreateBlockedDateRejectsBadDate(t *testing.T) {
	db := newHandlerDB(t)
	r := newScheduleRouter(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/admin/schedule/blocked", gin.H{
		"date": "next tuesday",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBlockedDate(t *testing.T) {
	db := newHandlerDB(t)
	blocked := models.BlockedDate{Date: testDay, AllDay: true}
	require.NoError(t, db.Create(&blocked).Error)
	r := newScheduleRouter(t, db)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/schedule/blocked/"+blocked.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.BlockedDate{}).Count(&count).Error)
	assert.Zero(t, count)
}
