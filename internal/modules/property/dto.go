package property

import (
	"time"

	"roomstay/internal/domain"
)

const dateLayout = "2006-01-02"

type RoomTypeInput struct {
	Name        string `json:"name" binding:"required"`
	Price       int    `json:"price" binding:"required,gt=0"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	Facility    string `json:"facility"`
	Floor       int    `json:"floor" binding:"required,gt=0"`
	RoomCount   int    `json:"room_count" binding:"required,gt=0"`
}

type CreatePropertyRequest struct {
	PropertyName string          `json:"property_name" binding:"required"`
	Type         int             `json:"type" binding:"min=0,max=2"`
	Address      string          `json:"address" binding:"required"`
	Province     int             `json:"province" binding:"min=0"`
	Description  string          `json:"description"`
	OwnerName    string          `json:"owner_name" binding:"required"`
	RoomTypes    []RoomTypeInput `json:"room_types" binding:"required,min=1,dive"`
}

type RoomResponse struct {
	RoomID             string `json:"room_id"`
	Name               string `json:"name"`
	AvailabilityStatus int    `json:"availability_status"`
	ActiveRoom         int    `json:"active_room"`
}

type RoomDetailResponse struct {
	RoomID             string            `json:"room_id"`
	Name               string            `json:"name"`
	AvailabilityStatus int               `json:"availability_status"`
	ActiveRoom         int               `json:"active_room"`
	MaintenanceStart   *time.Time        `json:"maintenance_start,omitempty"`
	MaintenanceEnd     *time.Time        `json:"maintenance_end,omitempty"`
	RoomType           *RoomTypeResponse `json:"room_type,omitempty"`
}

func toRoomDetailResponse(r *domain.Room) RoomDetailResponse {
	resp := RoomDetailResponse{
		RoomID:             r.RoomID,
		Name:               r.Name,
		AvailabilityStatus: r.AvailabilityStatus,
		ActiveRoom:         r.ActiveRoom,
		MaintenanceStart:   r.MaintenanceStart,
		MaintenanceEnd:     r.MaintenanceEnd,
	}
	if r.RoomType != nil {
		resp.RoomType = &RoomTypeResponse{
			RoomTypeID: r.RoomType.RoomTypeID,
			Name:       r.RoomType.Name,
			Price:      r.RoomType.Price,
			Capacity:   r.RoomType.Capacity,
			Facility:   r.RoomType.Facility,
			Floor:      r.RoomType.Floor,
		}
	}
	return resp
}

type RoomTypeResponse struct {
	RoomTypeID string         `json:"room_type_id"`
	Name       string         `json:"name"`
	Price      int            `json:"price"`
	Capacity   int            `json:"capacity"`
	Facility   string         `json:"facility,omitempty"`
	Floor      int            `json:"floor"`
	Rooms      []RoomResponse `json:"rooms,omitempty"`
}

type PropertyResponse struct {
	PropertyID   string             `json:"property_id"`
	PropertyName string             `json:"property_name"`
	Type         int                `json:"type"`
	TypeString   string             `json:"type_string"`
	Address      string             `json:"address"`
	Province     int                `json:"province"`
	Description  string             `json:"description,omitempty"`
	TotalRoom    int                `json:"total_room"`
	ActiveRoom   int                `json:"active_room"`
	Income       int                `json:"income"`
	OwnerName    string             `json:"owner_name"`
	OwnerID      string             `json:"owner_id"`
	RoomTypes    []RoomTypeResponse `json:"room_types,omitempty"`
}

func toPropertyResponse(p *domain.Property) PropertyResponse {
	resp := PropertyResponse{
		PropertyID:   p.PropertyID,
		PropertyName: p.PropertyName,
		Type:         p.Type,
		TypeString:   p.TypeString(),
		Address:      p.Address,
		Province:     p.Province,
		Description:  p.Description,
		TotalRoom:    p.TotalRoom,
		ActiveRoom:   p.ActiveRoom,
		Income:       p.Income,
		OwnerName:    p.OwnerName,
		OwnerID:      p.OwnerID.String(),
	}
	for _, rt := range p.RoomTypes {
		tr := RoomTypeResponse{
			RoomTypeID: rt.RoomTypeID,
			Name:       rt.Name,
			Price:      rt.Price,
			Capacity:   rt.Capacity,
			Facility:   rt.Facility,
			Floor:      rt.Floor,
		}
		for _, r := range rt.Rooms {
			tr.Rooms = append(tr.Rooms, RoomResponse{
				RoomID:             r.RoomID,
				Name:               r.Name,
				AvailabilityStatus: r.AvailabilityStatus,
				ActiveRoom:         r.ActiveRoom,
			})
		}
		resp.RoomTypes = append(resp.RoomTypes, tr)
	}
	return resp
}

func toPropertyResponses(ps []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ps))
	for i := range ps {
		out = append(out, toPropertyResponse(&ps[i]))
	}
	return out
}
