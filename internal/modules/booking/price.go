package booking

import (
	"time"

	"roomstay/internal/domain"
)

// BreakfastRatePerNight is the flat add-on charged per night when breakfast
// is included. Not user-suppliable.
const BreakfastRatePerNight = 50000

type Quote struct {
	Nights int `json:"nights"`
	Base   int `json:"base"`
	AddOn  int `json:"add_on"`
	Total  int `json:"total"`
}

// PriceFor computes the deterministic quote for a stay. The same inputs
// always produce the same quote, which is what lets updates re-price and
// compare against the stored total.
func PriceFor(roomType *domain.RoomType, checkIn, checkOut time.Time, breakfast bool) (Quote, error) {
	nights := domain.Nights(checkIn, checkOut)
	if nights < 1 {
		return Quote{}, ErrInvalidDateRange
	}

	q := Quote{
		Nights: nights,
		Base:   roomType.Price * nights,
	}
	if breakfast {
		q.AddOn = BreakfastRatePerNight * nights
	}
	q.Total = q.Base + q.AddOn
	return q, nil
}
