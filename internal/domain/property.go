package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	PropertyHotel     = 0
	PropertyVilla     = 1
	PropertyApartment = 2
)

type Property struct {
	PropertyID   string    `json:"property_id"`
	PropertyName string    `json:"property_name" validate:"required"`
	Type         int       `json:"type"` // 0=Hotel, 1=Villa, 2=Apartment
	Address      string    `json:"address" validate:"required"`
	Province     int       `json:"province"`
	Description  string    `json:"description,omitempty"`
	TotalRoom    int       `json:"total_room"`
	ActiveRoom   int       `json:"active_room"`
	Income       int       `json:"income"` // cumulative revenue, mutated only by the ledger
	ActiveStatus int       `json:"active_status"`
	OwnerName    string    `json:"owner_name"`
	OwnerID      uuid.UUID `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	RoomTypes []RoomType `json:"room_types,omitempty"`
}

func (p *Property) TypeString() string {
	switch p.Type {
	case PropertyHotel:
		return "Hotel"
	case PropertyVilla:
		return "Villa"
	case PropertyApartment:
		return "Apartment"
	default:
		return "Unknown"
	}
}
