package handler

import (
	"net/http"
	"strconv"

	"github.com/itemshare/rental-service/internal/dto"
	"github.com/itemshare/rental-service/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/bookings")
	g.POST("", h.CreateBooking)
	g.GET("", h.ListForBooker)
	g.GET("/owner", h.ListForOwner)
	g.GET("/:id", h.GetBooking)
	g.PATCH("/:id", h.ApproveBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	bookerID, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "item_id is required")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), bookerID, req.ItemID, req.Start, req.End)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ApproveBooking(c echo.Context) error {
	ownerID, err := actorID(c)
	if err != nil {
		return err
	}

	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved query parameter must be true or false")
	}

	booking, err := h.svc.ApproveBooking(c.Request().Context(), ownerID, bookingID, approved)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	requesterID, err := actorID(c)
	if err != nil {
		return err
	}

	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), requesterID, bookingID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListForBooker(c echo.Context) error {
	bookerID, err := actorID(c)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListForBooker(c.Request().Context(), bookerID, c.QueryParam("state"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *BookingHandler) ListForOwner(c echo.Context) error {
	ownerID, err := actorID(c)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListForOwner(c.Request().Context(), ownerID, c.QueryParam("state"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}
