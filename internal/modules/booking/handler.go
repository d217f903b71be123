package booking

import (
	"net/http"

	"roomstay/internal/middleware"
	"roomstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	rooms   RoomRepository
}

func NewHandler(service *Service, rooms RoomRepository) *Handler {
	return &Handler{service: service, rooms: rooms}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.UpdateBooking)
	rg.POST("/bookings/:id/pay", h.PayBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/rooms/:id/availability", h.RoomAvailability)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": toResponse(b)})
}

func (h *Handler) ListBookings(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	bs, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": toResponses(bs)})
}

func (h *Handler) GetBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	b, err := h.service.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": toResponse(b)})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": toResponse(b)})
}

func (h *Handler) PayBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	b, err := h.service.Pay(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": toResponse(b)})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": toResponse(b)})
}

// RoomAvailability answers whether a room can take the requested window,
// e.g. GET /rooms/APT-5566-004-101/availability?check_in=2026-09-01&check_out=2026-09-03
func (h *Handler) RoomAvailability(c *gin.Context) {
	checkIn, checkOut, err := parseStayDates(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in and check_out must be yyyy-mm-dd")
		return
	}
	if !checkOut.After(checkIn) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be after check_in")
		return
	}

	room, err := h.rooms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.NotFound(c, "Room not found")
		return
	}

	available, err := h.service.Checker().IsAvailable(c.Request.Context(), room, checkIn, checkOut)
	if err != nil {
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"room_id":   room.RoomID,
		"check_in":  checkIn.Format(dateLayout),
		"check_out": checkOut.Format(dateLayout),
		"available": available,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.NotFound(c, "Booking not found")
	case ErrRoomNotFound:
		response.NotFound(c, "Room not found")
	case ErrInvalidDateRange:
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-in must be in the future and before check-out")
	case ErrCapacityExceeded:
		response.Error(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", "Capacity exceeds room type capacity")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case ErrMaintenanceConflict:
		response.Conflict(c, "MAINTENANCE_CONFLICT", "Room has maintenance scheduled during selected dates")
	case ErrBookingConflict:
		response.Conflict(c, "BOOKING_CONFLICT", "Room is not available for the selected dates")
	case ErrPriceLocked:
		response.Error(c, http.StatusBadRequest, "PRICE_LOCKED", "Price cannot change on a confirmed booking")
	case ErrBookingCancelled:
		response.Error(c, http.StatusBadRequest, "BOOKING_CANCELLED", "Cancelled booking cannot be updated")
	case ErrNotPayable:
		response.Error(c, http.StatusBadRequest, "NOT_PAYABLE", "Only waiting bookings can be paid")
	case ErrNotCancellable:
		response.Error(c, http.StatusBadRequest, "NOT_CANCELLABLE", "Booking cannot be cancelled in its current status")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot access this booking")
	default:
		response.Internal(c)
	}
}
