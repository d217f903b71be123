package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer mirrors the profile of a booking customer as last seen. Bookings
// keep their own snapshot of these fields, so updating a customer never
// rewrites booking history.
type Customer struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
