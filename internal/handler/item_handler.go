package handler

import (
	"net/http"

	"github.com/itemshare/rental-service/internal/dto"
	"github.com/itemshare/rental-service/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/items")
	g.POST("", h.CreateItem)
	g.GET("", h.ListOwnItems)
	g.GET("/search", h.SearchItems)
	g.GET("/:id", h.GetItem)
	g.PATCH("/:id", h.UpdateItem)
	g.POST("/:id/comment", h.AddComment)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	ownerID, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name, description and available are required")
	}

	item, err := h.svc.Create(c.Request().Context(), ownerID, req.Name, req.Description, req.Available)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	ownerID, err := actorID(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.Update(c.Request().Context(), ownerID, itemID, service.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.svc.GetByID(c.Request().Context(), itemID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToItemDetailResponse(item))
}

func (h *ItemHandler) ListOwnItems(c echo.Context) error {
	ownerID, err := actorID(c)
	if err != nil {
		return err
	}

	views, err := h.svc.GetAllByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	resp := make([]dto.ItemOwnerResponse, len(views))
	for i := range views {
		resp[i] = dto.ToItemOwnerResponse(&views[i])
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) SearchItems(c echo.Context) error {
	items, err := h.svc.Search(c.Request().Context(), c.QueryParam("text"))
	if err != nil {
		return err
	}

	resp := make([]dto.ItemResponse, len(items))
	for i := range items {
		resp[i] = dto.ToItemResponse(&items[i])
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) AddComment(c echo.Context) error {
	authorID, err := actorID(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.svc.AddComment(c.Request().Context(), authorID, itemID, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}
