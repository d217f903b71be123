package domain

import "time"

// Maintenance is a scheduled unavailability window for one room. A room has
// at most one active window at a time; overlapping windows are rejected at
// scheduling.
type Maintenance struct {
	ID           int64     `json:"id"`
	RoomID       string    `json:"room_id" validate:"required"`
	StartAt      time.Time `json:"start_at" validate:"required"`
	EndAt        time.Time `json:"end_at" validate:"required"`
	ActiveStatus int       `json:"active_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Room *Room `json:"room,omitempty"`
}
