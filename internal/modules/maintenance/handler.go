package maintenance

import (
	"net/http"

	"roomstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/maintenances", h.ScheduleMaintenance)
	rg.GET("/maintenances", h.ListMaintenances)
	rg.GET("/rooms/:id/maintenances", h.ListRoomMaintenances)
}

func (h *Handler) ScheduleMaintenance(c *gin.Context) {
	var req ScheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Schedule(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrRoomNotFound:
			response.NotFound(c, "Room not found")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be yyyy-mm-dd and times HH:mm or HH:mm:ss")
		case ErrInvalidSchedule:
			response.Error(c, http.StatusBadRequest, "INVALID_SCHEDULE", "Maintenance end cannot be before start")
		case ErrOverlappingMaintenance:
			response.Conflict(c, "OVERLAPPING_MAINTENANCE", "Maintenance schedule overlaps with existing maintenance")
		case ErrBookingConflict:
			response.Conflict(c, "BOOKING_CONFLICT", "Maintenance schedule conflicts with existing bookings")
		default:
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"maintenance": toResponse(m)})
}

func (h *Handler) ListMaintenances(c *gin.Context) {
	ms, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"maintenances": toResponses(ms)})
}

func (h *Handler) ListRoomMaintenances(c *gin.Context) {
	ms, err := h.service.ListByRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"maintenances": toResponses(ms)})
}
