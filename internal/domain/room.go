package domain

import "time"

const (
	RoomUnavailable = 0
	RoomAvailable   = 1
)

type Room struct {
	RoomID             string `json:"room_id"`
	Name               string `json:"name" validate:"required"`
	AvailabilityStatus int    `json:"availability_status"` // 0=booked/maintenance, 1=available
	ActiveRoom         int    `json:"active_room"`         // 0=out of service, 1=normal

	// Denormalized copy of the room's current maintenance window. Written
	// when maintenance is scheduled and exposed on the room read API;
	// availability decisions re-derive conflicts from the maintenance
	// table instead of trusting these fields.
	MaintenanceStart *time.Time `json:"maintenance_start,omitempty"`
	MaintenanceEnd   *time.Time `json:"maintenance_end,omitempty"`

	RoomTypeID string    `json:"room_type_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	RoomType *RoomType `json:"room_type,omitempty"`
}

type RoomType struct {
	RoomTypeID   string    `json:"room_type_id"`
	Name         string    `json:"name" validate:"required"`
	Price        int       `json:"price" validate:"required,gt=0"` // nightly rate, integer currency units
	Description  string    `json:"description,omitempty"`
	Capacity     int       `json:"capacity" validate:"required,gt=0"`
	Facility     string    `json:"facility,omitempty"`
	Floor        int       `json:"floor" validate:"required,gt=0"`
	ActiveStatus int       `json:"active_status"`
	PropertyID   string    `json:"property_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty"`
}
