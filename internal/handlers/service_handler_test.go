package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/models"
)

func newServiceRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	h := NewServiceHandler(db)

	r := gin.New()
	r.GET("/api/services", h.ListPublic)
	r.POST("/api/admin/services", h.Create)
	r.PUT("/api/admin/services/:id", h.Update)
	r.DELETE("/api/admin/services/:id", h.Delete)
	return r
}

func TestCreateServiceEndpoint(t *testing.T) {
	db := newHandlerDB(t)
	r := newServiceRouter(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", gin.H{
		"name":        "Aromatherapy",
		"description": "Essential-oil assisted relaxation massage.",
		"durations":   []int{60},
		"prices":      map[string]float64{"60": 90},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateServiceRejectsPriceForUnofferedDuration(t *testing.T) {
	db := newHandlerDB(t)
	r := newServiceRouter(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", gin.H{
		"name":        "Aromatherapy",
		"description": "Essential-oil assisted relaxation massage.",
		"durations":   []int{60},
		"prices":      map[string]float64{"60": 90, "120": 150},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_prices", decodeBody(t, w)["error_code"])
}

func TestDeleteServiceWithBookingsRefused(t *testing.T) {
	db := newHandlerDB(t)
	svc := seedTestService(t, db)
	seedTestBooking(t, db, svc)
	r := newServiceRouter(t, db)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/services/"+svc.ID.String(), nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "service_has_bookings", decodeBody(t, w)["error_code"])

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteUnreferencedService(t *testing.T) {
	db := newHandlerDB(t)
	svc := seedTestService(t, db)
	r := newServiceRouter(t, db)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/services/"+svc.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteUnknownService(t *testing.T) {
	db := newHandlerDB(t)
	r := newServiceRouter(t, db)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/services/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPublicHidesDisabledServices(t *testing.T) {
	db := newHandlerDB(t)
	svc := seedTestService(t, db)
	hidden := seedTestService(t, db)
	require.NoError(t, db.Model(hidden).Update("available", false).Error)
	r := newServiceRouter(t, db)

	w := doJSON(t, r, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, svc.ID, out[0].ID)
}
