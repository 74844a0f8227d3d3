package service

import (
	"context"
	"time"

	"github.com/itemshare/rental-service/internal/models"
	"gorm.io/gorm"
)

// Function-field mocks for the repository interfaces. Unset fields fall
// back to "not found" / empty results.

func errNotFound() error { return gorm.ErrRecordNotFound }

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *models.User) error
	saveFn        func(ctx context.Context, user *models.User) error
	findByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
	findAllFn     func(ctx context.Context) ([]models.User, error)
	existsFn      func(ctx context.Context, id uint) (bool, error)
	deleteFn      func(ctx context.Context, id uint) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Save(ctx context.Context, user *models.User) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockItemRepo struct {
	createFn        func(ctx context.Context, item *models.Item) error
	saveFn          func(ctx context.Context, item *models.Item) error
	findByIDFn      func(ctx context.Context, id uint) (*models.Item, error)
	findByOwnerFn   func(ctx context.Context, ownerID uint) ([]models.Item, error)
	searchFn        func(ctx context.Context, text string) ([]models.Item, error)
	createCommentFn func(ctx context.Context, comment *models.Comment) error
	findCommentsFn  func(ctx context.Context, itemID uint) ([]models.Comment, error)
}

func (m *mockItemRepo) Create(ctx context.Context, item *models.Item) error {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return nil
}

func (m *mockItemRepo) Save(ctx context.Context, item *models.Item) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, item)
	}
	return nil
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockItemRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error) {
	return m.FindByID(ctx, id)
}

func (m *mockItemRepo) FindByOwner(ctx context.Context, ownerID uint) ([]models.Item, error) {
	if m.findByOwnerFn != nil {
		return m.findByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockItemRepo) Search(ctx context.Context, text string) ([]models.Item, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, text)
	}
	return nil, nil
}

func (m *mockItemRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, comment)
	}
	return nil
}

func (m *mockItemRepo) FindCommentsByItem(ctx context.Context, itemID uint) ([]models.Comment, error) {
	if m.findCommentsFn != nil {
		return m.findCommentsFn(ctx, itemID)
	}
	return nil, nil
}

type mockBookingRepo struct {
	createFn            func(ctx context.Context, booking *models.Booking) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Booking, error)
	findByBookerFn      func(ctx context.Context, bookerID uint) ([]models.Booking, error)
	findByItemOwnerFn   func(ctx context.Context, ownerID uint) ([]models.Booking, error)
	existsOverlappingFn func(ctx context.Context, itemID uint, start, end time.Time) (bool, error)
	updateStatusFn      func(ctx context.Context, bookingID uint, status models.BookingStatus) error
	existsCompletedFn   func(ctx context.Context, bookerID, itemID uint, before time.Time) (bool, error)
	findLastFn          func(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
	findNextFn          func(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
}

func (m *mockBookingRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	return m.FindByID(ctx, id)
}

func (m *mockBookingRepo) FindByBooker(ctx context.Context, bookerID uint) ([]models.Booking, error) {
	if m.findByBookerFn != nil {
		return m.findByBookerFn(ctx, bookerID)
	}
	return nil, nil
}

func (m *mockBookingRepo) FindByItemOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	if m.findByItemOwnerFn != nil {
		return m.findByItemOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockBookingRepo) ExistsOverlapping(ctx context.Context, tx *gorm.DB, itemID uint, start, end time.Time) (bool, error) {
	if m.existsOverlappingFn != nil {
		return m.existsOverlappingFn(ctx, itemID, start, end)
	}
	return false, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, bookingID, status)
	}
	return nil
}

func (m *mockBookingRepo) ExistsCompletedRental(ctx context.Context, bookerID, itemID uint, before time.Time) (bool, error) {
	if m.existsCompletedFn != nil {
		return m.existsCompletedFn(ctx, bookerID, itemID, before)
	}
	return false, nil
}

func (m *mockBookingRepo) FindLastBooking(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	if m.findLastFn != nil {
		return m.findLastFn(ctx, itemID, now)
	}
	return nil, nil
}

func (m *mockBookingRepo) FindNextBooking(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	if m.findNextFn != nil {
		return m.findNextFn(ctx, itemID, now)
	}
	return nil, nil
}
