package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking status values. The persisted enum also reserves 3 (refund
// requested) and 4 (done) for compatibility with older data; the lifecycle
// never produces them.
const (
	BookingWaiting   = 0 // waiting for payment
	BookingConfirmed = 1 // payment confirmed
	BookingCancelled = 2
)

// Soft-delete flag shared by bookings, room types, properties and
// maintenance windows.
const (
	Inactive = 0
	Active   = 1
)

type Booking struct {
	BookingID    string    `json:"booking_id"`
	RoomID       string    `json:"room_id" validate:"required"`
	CheckInDate  time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate time.Time `json:"check_out_date" validate:"required"`
	TotalDays    int       `json:"total_days"`
	TotalPrice   int       `json:"total_price"`
	Status       int       `json:"status"`
	Capacity     int       `json:"capacity" validate:"required,gt=0"`
	IsBreakfast  bool      `json:"is_breakfast"`
	Refund       int       `json:"refund"`
	ExtraPay     int       `json:"extra_pay"`
	ActiveStatus int       `json:"active_status"`

	// Customer snapshot captured at booking time; kept even if the
	// customer record changes later.
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`

	// Set exactly once by the auto-checkout sweep; guards against a
	// replayed sweep crediting revenue twice.
	RevenueRecognizedAt *time.Time `json:"revenue_recognized_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room *Room `json:"room,omitempty"`
}

func (b *Booking) StatusString() string {
	switch b.Status {
	case BookingWaiting:
		return "Waiting for Payment"
	case BookingConfirmed:
		return "Payment Confirmed"
	case BookingCancelled:
		return "Cancelled"
	case 3:
		return "Request Refund"
	case 4:
		return "Done"
	default:
		return "Unknown"
	}
}

// Live reports whether the booking still claims its room: not soft-deleted
// and not cancelled.
func (b *Booking) Live() bool {
	return b.ActiveStatus == Active && b.Status != BookingCancelled
}
