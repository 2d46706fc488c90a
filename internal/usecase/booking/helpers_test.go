package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/serenetouch/booking-api/internal/audit"
	appdb "github.com/serenetouch/booking-api/internal/db"
	"github.com/serenetouch/booking-api/internal/infra/repository"
	"github.com/serenetouch/booking-api/internal/models"
)

const testTZ = "UTC"

// 2026-03-09 is a Monday.
var testDay = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single conn keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, appdb.Migrate(db))
	return db
}

func newTestDeps(t *testing.T) (*gorm.DB, *repository.BookingGormRepository, *audit.Dispatcher) {
	t.Helper()

	db := newTestDB(t)
	repo := repository.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	return db, repo, dispatcher
}

func seedService(t *testing.T, db *gorm.DB) *models.Service {
	t.Helper()

	svc := models.Service{
		Name:        "Deep Tissue Massage",
		Description: "Focused pressure work on chronic tension.",
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

func seedBooking(t *testing.T, db *gorm.DB, svc *models.Service) *models.Booking {
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

func getBooking(t *testing.T, db *gorm.DB, id any) *models.Booking {
	t.Helper()

	var b models.Booking
	require.NoError(t, db.Where("id = ?", id).First(&b).Error)
	return &b
}
