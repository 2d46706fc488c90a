package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/serenetouch/booking-api/internal/domain/booking"
	"github.com/serenetouch/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (create)
// --------------------------------------------------

// CreateBookingWithClient upserts the client profile and inserts the
// booking in one transaction. The client upsert runs first so a
// partial failure can never leave a booking without a client record.
func (r *BookingGormRepository) CreateBookingWithClient(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		now := time.Now()

		var client models.Client
		err := tx.Where("email = ?", b.ClientEmail).First(&client).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			client = models.Client{
				Name:      b.ClientName,
				Email:     b.ClientEmail,
				Phone:     b.ClientPhone,
				Gender:    b.ClientGender,
				LastVisit: now,
			}
			if err := tx.Create(&client).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// last write wins on every profile field
			if err := tx.Model(&client).Updates(map[string]any{
				"name":       b.ClientName,
				"phone":      b.ClientPhone,
				"gender":     b.ClientGender,
				"last_visit": now,
			}).Error; err != nil {
				return err
			}
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DayStart != nil && filter.DayEnd != nil {
		q = q.Where("date >= ? AND date < ?", *filter.DayStart, *filter.DayEnd)
	}

	var bookings []models.Booking
	if err := q.
		Order("date ASC").
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uuid.UUID,
	to domain.Status,
) (*models.Booking, error) {

	var b models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&b).Error; err != nil {
			return err
		}

		if err := domain.CanTransition(domain.Status(b.Status), to); err != nil {
			return err
		}

		if err := tx.Model(&models.Booking{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status":     string(to),
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		b.Status = string(to)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBookingFields(
	ctx context.Context,
	id uuid.UUID,
	fields map[string]any,
) error {

	fields["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListWorkingHours(
	ctx context.Context,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *BookingGormRepository) ListBlockedDatesOn(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.BlockedDate, error) {

	var blocked []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Find(&blocked).Error; err != nil {
		return nil, err
	}
	return blocked, nil
}
