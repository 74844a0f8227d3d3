package handler

import (
	"net/http"

	"github.com/itemshare/rental-service/internal/dto"
	"github.com/itemshare/rental-service/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/users")
	g.POST("", h.CreateUser)
	g.GET("", h.ListUsers)
	g.GET("/:id", h.GetUser)
	g.PATCH("/:id", h.UpdateUser)
	g.DELETE("/:id", h.DeleteUser)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name and a valid email are required")
	}

	user, err := h.svc.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.Update(c.Request().Context(), userID, service.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.svc.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = dto.ToUserResponse(&users[i])
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), userID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
