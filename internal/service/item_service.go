package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/itemshare/rental-service/internal/apperr"
	"github.com/itemshare/rental-service/internal/models"
	"github.com/itemshare/rental-service/internal/repository"
	"gorm.io/gorm"
)

// ItemUpdate carries the patch fields of an item update; nil means
// "leave unchanged".
type ItemUpdate struct {
	Name        *string
	Description *string
	Available   *bool
}

// ItemWithBookings is the owner's view of an item: its comments plus
// the edges of the approved schedule around now.
type ItemWithBookings struct {
	Item        models.Item
	LastBooking *time.Time
	NextBooking *time.Time
	Comments    []models.Comment
}

type ItemService interface {
	Create(ctx context.Context, ownerID uint, name, description string, available *bool) (*models.Item, error)
	Update(ctx context.Context, ownerID, itemID uint, upd ItemUpdate) (*models.Item, error)
	GetByID(ctx context.Context, itemID uint) (*models.Item, error)
	GetAllByOwner(ctx context.Context, ownerID uint) ([]ItemWithBookings, error)
	Search(ctx context.Context, text string) ([]models.Item, error)
	AddComment(ctx context.Context, authorID, itemID uint, text string) (*models.Comment, error)
}

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	now         func() time.Time
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		now:         time.Now,
	}
}

func (s *itemService) Create(ctx context.Context, ownerID uint, name, description string, available *bool) (*models.Item, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("item name cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperr.Validation("item description cannot be empty")
	}
	if available == nil {
		return nil, apperr.Validation("item availability must be provided")
	}

	item := &models.Item{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Available:   *available,
		OwnerID:     ownerID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, ownerID, itemID uint, upd ItemUpdate) (*models.Item, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item with id=%d not found", itemID)
		}
		return nil, err
	}

	if item.OwnerID != ownerID {
		return nil, apperr.NotFound("user with id=%d is not the owner of the item", ownerID)
	}

	if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
		item.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Description != nil && strings.TrimSpace(*upd.Description) != "" {
		item.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Available != nil {
		item.Available = *upd.Available
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, itemID uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item with id=%d not found", itemID)
		}
		return nil, err
	}

	comments, err := s.itemRepo.FindCommentsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.Comments = comments

	return item, nil
}

func (s *itemService) GetAllByOwner(ctx context.Context, ownerID uint) ([]ItemWithBookings, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]ItemWithBookings, 0, len(items))
	for _, item := range items {
		view := ItemWithBookings{Item: item}

		last, err := s.bookingRepo.FindLastBooking(ctx, item.ID, now)
		if err != nil {
			return nil, err
		}
		if last != nil {
			view.LastBooking = &last.End
		}

		next, err := s.bookingRepo.FindNextBooking(ctx, item.ID, now)
		if err != nil {
			return nil, err
		}
		if next != nil {
			view.NextBooking = &next.Start
		}

		comments, err := s.itemRepo.FindCommentsByItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		view.Comments = comments

		result = append(result, view)
	}

	return result, nil
}

func (s *itemService) Search(ctx context.Context, text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text)
}

func (s *itemService) AddComment(ctx context.Context, authorID, itemID uint, text string) (*models.Comment, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user with id=%d not found", authorID)
		}
		return nil, err
	}

	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item with id=%d not found", itemID)
		}
		return nil, err
	}

	// Only users who actually finished a rental of the item may comment.
	rented, err := s.bookingRepo.ExistsCompletedRental(ctx, authorID, itemID, s.now())
	if err != nil {
		return nil, err
	}
	if !rented {
		return nil, apperr.Validation("user has not rented this item")
	}

	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("comment text cannot be empty")
	}

	comment := &models.Comment{
		ItemID:   itemID,
		AuthorID: authorID,
		Text:     strings.TrimSpace(text),
	}
	if err := s.itemRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	comment.Author = author

	return comment, nil
}

func (s *itemService) requireUser(ctx context.Context, userID uint) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("user with id=%d not found", userID)
	}
	return nil
}
