package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/serenetouch/booking-api/internal/audit"
	appdb "github.com/serenetouch/booking-api/internal/db"
	"github.com/serenetouch/booking-api/internal/infra/repository"
	"github.com/serenetouch/booking-api/internal/models"
	ucBooking "github.com/serenetouch/booking-api/internal/usecase/booking"
)

const testTZ = "UTC"

// 2026-03-09 is a Monday.
var testDay = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, appdb.Migrate(db))
	return db
}

func newBookingStack(t *testing.T, db *gorm.DB) (*repository.BookingGormRepository, *audit.Dispatcher) {
	t.Helper()

	repo := repository.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	return repo, dispatcher
}

func newBookingHandler(t *testing.T, db *gorm.DB) *BookingHandler {
	t.Helper()

	repo, dispatcher := newBookingStack(t, db)
	return NewBookingHandler(
		ucBooking.NewCreateBooking(repo, dispatcher, testTZ),
		ucBooking.NewGetBooking(repo),
		ucBooking.NewListBookings(repo, testTZ),
		ucBooking.NewUpdateStatus(repo, dispatcher),
		ucBooking.NewSetPayment(repo, dispatcher),
		ucBooking.NewDeleteBooking(repo, dispatcher),
	)
}

func seedTestService(t *testing.T, db *gorm.DB) *models.Service {
	t.Helper()

	svc := models.Service{
		Name:        "Hot Stone Massage",
		Description: "Heated basalt stones along the back.",
		Durations:   datatypes.NewJSONType([]int{60, 90}),
		Prices: datatypes.NewJSONType(map[int]float64{
			60: 100,
			90: 140,
		}),
		Available: true,
	}
	require.NoError(t, db.Create(&svc).Error)
	return &svc
}

func seedTestBooking(t *testing.T, db *gorm.DB, svc *models.Service) *models.Booking {
	t.Helper()

	b := models.Booking{
		ClientName:    "Jane Doe",
		ClientEmail:   "jane@example.com",
		ClientPhone:   "+15550100",
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		Duration:      60,
		Price:         100,
		Date:          testDay,
		Time:          "10:00",
		Location:      "studio",
		Status:        "pending",
		PaymentStatus: "pending",
		PaymentMethod: "crypto",
	}
	require.NoError(t, db.Create(&b).Error)
	return &b
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doAuthed(t *testing.T, r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func currentBooking(t *testing.T, db *gorm.DB, id any) *models.Booking {
	t.Helper()

	var b models.Booking
	require.NoError(t, db.Where("id = ?", id).First(&b).Error)
	return &b
}
