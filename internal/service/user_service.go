package service

import (
	"context"
	"errors"
	"strings"

	"github.com/itemshare/rental-service/internal/apperr"
	"github.com/itemshare/rental-service/internal/models"
	"github.com/itemshare/rental-service/internal/repository"
	"gorm.io/gorm"
)

// UserUpdate carries the patch fields of a user update; nil means
// "leave unchanged".
type UserUpdate struct {
	Name  *string
	Email *string
}

type UserService interface {
	Create(ctx context.Context, name, email string) (*models.User, error)
	Update(ctx context.Context, userID uint, upd UserUpdate) (*models.User, error)
	GetByID(ctx context.Context, userID uint) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, userID uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, name, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, apperr.Validation("email cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return nil, apperr.Validation("invalid email format")
	}
	if name == "" {
		return nil, apperr.Validation("name cannot be empty")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{Name: name, Email: email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, userID uint, upd UserUpdate) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user with id=%d not found", userID)
		}
		return nil, err
	}

	if upd.Email != nil && strings.TrimSpace(*upd.Email) != "" {
		email := strings.TrimSpace(*upd.Email)

		existing, err := s.userRepo.FindByEmail(ctx, email)
		if err == nil && existing.ID != userID {
			return nil, apperr.Conflict("email already exists")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if !strings.Contains(email, "@") {
			return nil, apperr.Validation("invalid email format")
		}
		user.Email = email
	}

	if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
		user.Name = strings.TrimSpace(*upd.Name)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user with id=%d not found", userID)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) Delete(ctx context.Context, userID uint) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("user with id=%d not found", userID)
	}
	return s.userRepo.Delete(ctx, userID)
}
