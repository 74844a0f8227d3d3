package service

import (
	"context"
	"errors"
	"time"

	"github.com/itemshare/rental-service/internal/apperr"
	"github.com/itemshare/rental-service/internal/models"
	"github.com/itemshare/rental-service/internal/repository"
	"github.com/itemshare/rental-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID, itemID uint, start, end time.Time) (*models.Booking, error)
	ApproveBooking(ctx context.Context, ownerID, bookingID uint, approved bool) (*models.Booking, error)
	GetBooking(ctx context.Context, requesterID, bookingID uint) (*models.Booking, error)
	ListForBooker(ctx context.Context, bookerID uint, stateParam string) ([]models.Booking, error)
	ListForOwner(ctx context.Context, ownerID uint, stateParam string) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
	publisher   *rabbitmq.Publisher
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, bookerID, itemID uint, start, end time.Time) (*models.Booking, error) {
	booker, err := s.userRepo.FindByID(ctx, bookerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user with id=%d not found", bookerID)
		}
		return nil, err
	}

	var result *models.Booking

	err = s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		// Row lock on the item serializes concurrent create calls, so
		// the overlap check and the insert are atomic per item.
		item, err := s.itemRepo.FindByIDForUpdate(ctx, tx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("item with id=%d not found", itemID)
			}
			return err
		}

		if !item.Available {
			return apperr.Validation("item with id=%d is not available for booking", itemID)
		}

		// Deliberately not-found rather than forbidden: owners never
		// learn their own item is bookable-by-id through this surface.
		if item.OwnerID == bookerID {
			return apperr.NotFound("owner cannot book their own item")
		}

		if err := validateBookingDates(start, end, s.now()); err != nil {
			return err
		}

		overlapping, err := s.bookingRepo.ExistsOverlapping(ctx, tx, itemID, start, end)
		if err != nil {
			return err
		}
		if overlapping {
			return apperr.Validation("item is already booked for the requested dates")
		}

		booking := &models.Booking{
			ItemID:   itemID,
			BookerID: bookerID,
			Start:    start,
			End:      end,
			Status:   models.StatusWaiting,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		booking.Item = item
		booking.Booker = booker
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyBookingCreated, result)
	}

	return result, nil
}

func (s *bookingService) ApproveBooking(ctx context.Context, ownerID, bookingID uint, approved bool) (*models.Booking, error) {
	exists, err := s.userRepo.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user with id=%d not found", ownerID)
	}

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}

	err = s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		// Lock the booking row: two racing approvals must not both
		// observe WAITING.
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("booking with id=%d not found", bookingID)
			}
			return err
		}

		item, err := s.itemRepo.FindByID(ctx, booking.ItemID)
		if err != nil {
			return err
		}
		if item.OwnerID != ownerID {
			return apperr.Forbidden("only the item owner can approve a booking")
		}

		if booking.Status != models.StatusWaiting {
			return apperr.Conflict("booking with id=%d is already resolved", bookingID)
		}

		return s.bookingRepo.UpdateStatus(ctx, tx, bookingID, status)
	})
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		key := rabbitmq.KeyBookingRejected
		if approved {
			key = rabbitmq.KeyBookingApproved
		}
		_ = s.publisher.Publish(key, booking)
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, requesterID, bookingID uint) (*models.Booking, error) {
	exists, err := s.userRepo.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user with id=%d not found", requesterID)
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking with id=%d not found", bookingID)
		}
		return nil, err
	}

	// Only the booker and the item owner may see a booking; everyone
	// else gets the same not-found as a missing id to avoid leaking
	// that the booking exists.
	if booking.BookerID != requesterID && booking.Item.OwnerID != requesterID {
		return nil, apperr.NotFound("booking with id=%d not found", bookingID)
	}

	return booking, nil
}

func (s *bookingService) ListForBooker(ctx context.Context, bookerID uint, stateParam string) ([]models.Booking, error) {
	return s.listBookings(ctx, bookerID, stateParam, s.bookingRepo.FindByBooker)
}

func (s *bookingService) ListForOwner(ctx context.Context, ownerID uint, stateParam string) ([]models.Booking, error) {
	return s.listBookings(ctx, ownerID, stateParam, s.bookingRepo.FindByItemOwner)
}

func (s *bookingService) listBookings(
	ctx context.Context,
	userID uint,
	stateParam string,
	fetch func(context.Context, uint) ([]models.Booking, error),
) ([]models.Booking, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user with id=%d not found", userID)
	}

	// Parse before hitting the store: an unknown state never costs a
	// query.
	state, err := models.ParseBookingState(stateParam)
	if err != nil {
		return nil, err
	}

	bookings, err := fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	return models.FilterByState(bookings, state, s.now()), nil
}

func validateBookingDates(start, end time.Time, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return apperr.Validation("start and end dates must be provided")
	}
	if start.After(end) {
		return apperr.Validation("start date cannot be after end date")
	}
	if start.Equal(end) {
		return apperr.Validation("start date cannot equal end date")
	}
	if start.Before(now) {
		return apperr.Validation("start date cannot be in the past")
	}
	return nil
}
