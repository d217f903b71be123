package property

import (
	"net/http"
	"time"

	"roomstay/internal/middleware"
	"roomstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes splits the surface in two: browse is for any authenticated
// user, manage carries the owner-only mutations.
func (h *Handler) RegisterRoutes(browse, manage *gin.RouterGroup) {
	browse.GET("/properties", h.ListProperties)
	browse.GET("/properties/:id", h.GetProperty)
	browse.GET("/properties/:id/available-rooms", h.SearchAvailableRooms)
	browse.GET("/rooms/:id", h.GetRoom)

	manage.POST("/properties", h.CreateProperty)
	manage.DELETE("/rooms/:id", h.DeactivateRoom)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property data")
			return
		}
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"property": toPropertyResponse(p)})
}

func (h *Handler) ListProperties(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	ps, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": toPropertyResponses(ps)})
}

func (h *Handler) GetProperty(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(c, "Property not found")
			return
		}
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": toPropertyResponse(p)})
}

// SearchAvailableRooms answers
// GET /properties/:id/available-rooms?check_in=2026-09-01&check_out=2026-09-03
func (h *Handler) SearchAvailableRooms(c *gin.Context) {
	checkIn, err := time.Parse(dateLayout, c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be yyyy-mm-dd")
		return
	}
	checkOut, err := time.Parse(dateLayout, c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be yyyy-mm-dd")
		return
	}
	if !checkOut.After(checkIn) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be after check_in")
		return
	}

	rooms, err := h.service.SearchAvailableRooms(c.Request.Context(), c.Param("id"), checkIn.UTC(), checkOut.UTC())
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(c, "Property not found")
			return
		}
		response.Internal(c)
		return
	}

	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomResponse{
			RoomID:             r.RoomID,
			Name:               r.Name,
			AvailabilityStatus: r.AvailabilityStatus,
			ActiveRoom:         r.ActiveRoom,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": out})
}

func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.service.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrRoomNotFound {
			response.NotFound(c, "Room not found")
			return
		}
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": toRoomDetailResponse(room)})
}

func (h *Handler) DeactivateRoom(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	err := h.service.DeactivateRoom(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		switch err {
		case ErrRoomNotFound:
			response.NotFound(c, "Room not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this room")
		default:
			response.Internal(c)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_id": c.Param("id")})
}
