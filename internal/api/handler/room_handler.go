package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MadeCbt/roombooking/internal/api/metrics"
	"github.com/MadeCbt/roombooking/internal/core/domain"
	"github.com/MadeCbt/roombooking/internal/core/ports"
)

// RoomHandler handles HTTP requests for room and booking operations.
type RoomHandler struct {
	service ports.BookingService
}

func NewRoomHandler(service ports.BookingService) *RoomHandler {
	return &RoomHandler{service: service}
}

// Create handles POST /api/admin/rooms.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  createRoomResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	room, err := h.service.CreateRoom(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRoom) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Room already exists"})
		}
		return err
	}

	metrics.RoomsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createRoomResponse{Message: "Room created", Room: room})
}

// List handles GET /api/admin/rooms. Every room is returned with its full
// embedded booking list, in the store's natural order.
//
// @Summary      List all rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {array}   domain.Room
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.service.ListRooms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Delete handles DELETE /api/admin/rooms/:id. The delete is idempotent:
// unknown and malformed ids report success as well.
//
// @Summary      Delete a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteRoom(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RoomsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Room deleted"})
}

// Book handles POST /api/admin/book.
//
// @Summary      Book a slot
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      bookRequest  true  "Booking details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/book [post]
func (h *RoomHandler) Book(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err := h.service.Book(c.Request().Context(), ports.BookInput{
		RoomName: req.RoomName,
		Date:     req.Date,
		Hour:     req.Hour,
		Note:     req.Note,
		Username: req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			metrics.BookingsTotal.WithLabelValues("room_not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Room not found"})
		case errors.Is(err, domain.ErrSlotConflict):
			metrics.BookingsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Time slot already booked"})
		}
		metrics.BookingsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.BookingsTotal.WithLabelValues("booked").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Booking successful"})
}
