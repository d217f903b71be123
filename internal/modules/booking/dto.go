package booking

import (
	"time"

	"roomstay/internal/domain"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomID         string `json:"room_id" binding:"required"`
	CustomerID     string `json:"customer_id" binding:"required,uuid"`
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerEmail  string `json:"customer_email" binding:"required,email"`
	CustomerPhone  string `json:"customer_phone" binding:"required"`
	CheckInDate    string `json:"check_in_date" binding:"required"`
	CheckOutDate   string `json:"check_out_date" binding:"required"`
	Capacity       int    `json:"capacity" binding:"required,gt=0"`
	AddOnBreakfast bool   `json:"add_on_breakfast"`
}

type UpdateBookingRequest struct {
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerEmail  string `json:"customer_email" binding:"required,email"`
	CustomerPhone  string `json:"customer_phone" binding:"required"`
	CheckInDate    string `json:"check_in_date" binding:"required"`
	CheckOutDate   string `json:"check_out_date" binding:"required"`
	Capacity       int    `json:"capacity" binding:"required,gt=0"`
	AddOnBreakfast bool   `json:"add_on_breakfast"`
}

// parseStayDates interprets date-only input at start of day UTC, matching
// how stored intervals are compared.
func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return in.UTC(), out.UTC(), nil
}

type BookingResponse struct {
	BookingID      string     `json:"booking_id"`
	RoomID         string     `json:"room_id"`
	CheckInDate    time.Time  `json:"check_in_date"`
	CheckOutDate   time.Time  `json:"check_out_date"`
	TotalDays      int        `json:"total_days"`
	TotalPrice     int        `json:"total_price"`
	Status         int        `json:"status"`
	StatusString   string     `json:"status_string"`
	Capacity       int        `json:"capacity"`
	AddOnBreakfast bool       `json:"add_on_breakfast"`
	Refund         int        `json:"refund"`
	ExtraPay       int        `json:"extra_pay"`
	CustomerID     string     `json:"customer_id"`
	CustomerName   string     `json:"customer_name"`
	CustomerEmail  string     `json:"customer_email"`
	CustomerPhone  string     `json:"customer_phone"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CheckedOutAt   *time.Time `json:"checked_out_at,omitempty"`
}

func toResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:      b.BookingID,
		RoomID:         b.RoomID,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		TotalDays:      b.TotalDays,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
		StatusString:   b.StatusString(),
		Capacity:       b.Capacity,
		AddOnBreakfast: b.IsBreakfast,
		Refund:         b.Refund,
		ExtraPay:       b.ExtraPay,
		CustomerID:     b.CustomerID.String(),
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  b.CustomerPhone,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		CheckedOutAt:   b.RevenueRecognizedAt,
	}
}

func toResponses(bs []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toResponse(&bs[i]))
	}
	return out
}
