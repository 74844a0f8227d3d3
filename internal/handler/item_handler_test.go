package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/itemshare/rental-service/internal/apperr"
	"github.com/itemshare/rental-service/internal/dto"
	"github.com/itemshare/rental-service/internal/middleware"
	"github.com/itemshare/rental-service/internal/models"
	"github.com/itemshare/rental-service/internal/service"
	"github.com/itemshare/rental-service/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockItemService struct {
	createFn     func(ctx context.Context, ownerID uint, name, description string, available *bool) (*models.Item, error)
	updateFn     func(ctx context.Context, ownerID, itemID uint, upd service.ItemUpdate) (*models.Item, error)
	getFn        func(ctx context.Context, itemID uint) (*models.Item, error)
	getByOwnerFn func(ctx context.Context, ownerID uint) ([]service.ItemWithBookings, error)
	searchFn     func(ctx context.Context, text string) ([]models.Item, error)
	addCommentFn func(ctx context.Context, authorID, itemID uint, text string) (*models.Comment, error)
}

func (m *mockItemService) Create(ctx context.Context, ownerID uint, name, description string, available *bool) (*models.Item, error) {
	return m.createFn(ctx, ownerID, name, description, available)
}
func (m *mockItemService) Update(ctx context.Context, ownerID, itemID uint, upd service.ItemUpdate) (*models.Item, error) {
	return m.updateFn(ctx, ownerID, itemID, upd)
}
func (m *mockItemService) GetByID(ctx context.Context, itemID uint) (*models.Item, error) {
	return m.getFn(ctx, itemID)
}
func (m *mockItemService) GetAllByOwner(ctx context.Context, ownerID uint) ([]service.ItemWithBookings, error) {
	return m.getByOwnerFn(ctx, ownerID)
}
func (m *mockItemService) Search(ctx context.Context, text string) ([]models.Item, error) {
	return m.searchFn(ctx, text)
}
func (m *mockItemService) AddComment(ctx context.Context, authorID, itemID uint, text string) (*models.Comment, error) {
	return m.addCommentFn(ctx, authorID, itemID, text)
}

func newItemServer(svc service.ItemService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = validation.New()
	NewItemHandler(svc).RegisterRoutes(e)
	return e
}

func TestCreateItem_Handler_Success(t *testing.T) {
	svc := &mockItemService{
		createFn: func(ctx context.Context, ownerID uint, name, description string, available *bool) (*models.Item, error) {
			return &models.Item{ID: 100, Name: name, Description: description, Available: *available, OwnerID: ownerID}, nil
		},
	}
	e := newItemServer(svc)

	body := `{"name":"drill","description":"cordless drill","available":true}`
	rec := doJSON(e, http.MethodPost, "/items", body, "1")

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(100), resp.ID)
	assert.Equal(t, uint(1), resp.OwnerID)
	assert.True(t, resp.Available)
}

func TestCreateItem_Handler_MissingAvailable(t *testing.T) {
	e := newItemServer(&mockItemService{})

	rec := doJSON(e, http.MethodPost, "/items", `{"name":"drill","description":"d"}`, "1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchItems_Handler(t *testing.T) {
	svc := &mockItemService{
		searchFn: func(ctx context.Context, text string) ([]models.Item, error) {
			assert.Equal(t, "drill", text)
			return []models.Item{{ID: 100, Name: "drill", Available: true}}, nil
		},
	}
	e := newItemServer(svc)

	rec := doJSON(e, http.MethodGet, "/items/search?text=drill", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "drill", resp[0].Name)
}

func TestUpdateItem_Handler_NotOwner(t *testing.T) {
	svc := &mockItemService{
		updateFn: func(ctx context.Context, ownerID, itemID uint, upd service.ItemUpdate) (*models.Item, error) {
			return nil, apperr.NotFound("user with id=%d is not the owner of the item", ownerID)
		},
	}
	e := newItemServer(svc)

	rec := doJSON(e, http.MethodPatch, "/items/100", `{"name":"saw"}`, "2")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddComment_Handler(t *testing.T) {
	svc := &mockItemService{
		addCommentFn: func(ctx context.Context, authorID, itemID uint, text string) (*models.Comment, error) {
			return &models.Comment{ID: 5, ItemID: itemID, AuthorID: authorID, Text: text,
				Author: &models.User{ID: authorID, Name: "Bob"}}, nil
		},
	}
	e := newItemServer(svc)

	rec := doJSON(e, http.MethodPost, "/items/100/comment", `{"text":"great drill"}`, "2")

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.CommentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "great drill", resp.Text)
	assert.Equal(t, "Bob", resp.AuthorName)
}

func TestAddComment_Handler_NotRented(t *testing.T) {
	svc := &mockItemService{
		addCommentFn: func(ctx context.Context, authorID, itemID uint, text string) (*models.Comment, error) {
			return nil, apperr.Validation("user has not rented this item")
		},
	}
	e := newItemServer(svc)

	rec := doJSON(e, http.MethodPost, "/items/100/comment", `{"text":"nice"}`, "3")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "has not rented")
}
