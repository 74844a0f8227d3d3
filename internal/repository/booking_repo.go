package repository

import (
	"context"
	"errors"
	"time"

	"github.com/itemshare/rental-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository interface {
	// Transaction runs fn in a single database transaction; tx-taking
	// methods below must be called with the fn argument.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error

	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	FindByBooker(ctx context.Context, bookerID uint) ([]models.Booking, error)
	FindByItemOwner(ctx context.Context, ownerID uint) ([]models.Booking, error)
	ExistsOverlapping(ctx context.Context, tx *gorm.DB, itemID uint, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error
	ExistsCompletedRental(ctx context.Context, bookerID, itemID uint, before time.Time) (bool, error)
	FindLastBooking(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
	FindNextBooking(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate locks the booking row so racing approval calls see
// exactly one WAITING read.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByBooker(ctx context.Context, bookerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("booker_id = ?", bookerID).
		Order("start_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByItemOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID).
		Order("bookings.start_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ExistsOverlapping reports whether a WAITING or APPROVED booking of the
// item intersects [start, end). Half-open intervals: a booking ending
// exactly at start (or starting exactly at end) does not conflict.
func (r *bookingRepository) ExistsOverlapping(ctx context.Context, tx *gorm.DB, itemID uint, start, end time.Time) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("item_id = ?", itemID).
		Where("status IN ?", []models.BookingStatus{models.StatusWaiting, models.StatusApproved}).
		Where("start_date < ? AND end_date > ?", end, start).
		Count(&count).Error
	return count > 0, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

// ExistsCompletedRental reports whether the user has an APPROVED booking
// of the item that ended before the given instant. Gates commenting.
func (r *bookingRepository) ExistsCompletedRental(ctx context.Context, bookerID, itemID uint, before time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_date < ?",
			bookerID, itemID, models.StatusApproved, before).
		Count(&count).Error
	return count > 0, err
}

// FindLastBooking returns the most recently finished APPROVED booking of
// the item, or nil when there is none.
func (r *bookingRepository) FindLastBooking(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND end_date < ?", itemID, models.StatusApproved, now).
		Order("end_date DESC").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// FindNextBooking returns the closest upcoming APPROVED booking of the
// item, or nil when there is none.
func (r *bookingRepository) FindNextBooking(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_date > ?", itemID, models.StatusApproved, now).
		Order("start_date ASC").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}
