package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teranga_match/internal/models"
)

type BookingRepository interface {
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByVisitor(ctx context.Context, visitorID uint) ([]models.Booking, error)
	FindByGuide(ctx context.Context, guideID uint) ([]models.Booking, error)
	FindByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	// FindEndedWithStatus returns bookings in status whose end is before t.
	FindEndedWithStatus(ctx context.Context, status models.BookingStatus, t time.Time) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Save(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id uint) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) list(q *gorm.DB) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := q.Preload("Visitor").Preload("Guide").Order("start_date_time").Find(&bookings).Error; err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).Preload("Visitor").Preload("Guide").First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *bookingRepository) FindByVisitor(ctx context.Context, visitorID uint) ([]models.Booking, error) {
	return r.list(r.db.WithContext(ctx).Where("visitor_id = ?", visitorID))
}

func (r *bookingRepository) FindByGuide(ctx context.Context, guideID uint) ([]models.Booking, error) {
	return r.list(r.db.WithContext(ctx).Where("guide_id = ?", guideID))
}

func (r *bookingRepository) FindByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return r.list(r.db.WithContext(ctx).Where("status = ?", status))
}

func (r *bookingRepository) FindEndedWithStatus(ctx context.Context, status models.BookingStatus, t time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date_time < ?", status, t).
		Order("id").
		Find(&bookings).Error
	if err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error)
}

func (r *bookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(booking).Error)
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Booking{}, id))
}
