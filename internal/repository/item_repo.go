package repository

import (
	"context"

	"github.com/itemshare/rental-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	Save(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id uint) (*models.Item, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Item, error)
	Search(ctx context.Context, text string) ([]models.Item, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	FindCommentsByItem(ctx context.Context, itemID uint) ([]models.Comment, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDForUpdate acquires a row-level lock on the item within the
// given transaction, serializing concurrent booking attempts for it.
func (r *itemRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error) {
	var item models.Item
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Search matches available items whose name or description contains the
// text, case-insensitively.
func (r *itemRepository) Search(ctx context.Context, text string) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + text + "%"
	if err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *itemRepository) FindCommentsByItem(ctx context.Context, itemID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id = ?", itemID).
		Order("created DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
