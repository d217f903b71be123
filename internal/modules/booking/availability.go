package booking

import (
	"context"
	"time"

	"roomstay/internal/domain"
)

// AvailabilityChecker decides whether a room can take a [checkIn, checkOut)
// window. Maintenance conflicts are always re-derived from the maintenance
// table rather than read off the room's denormalized fields, so a stale
// cache can never admit a booking.
type AvailabilityChecker struct {
	bookings BookingRepository
	maint    MaintenanceGuard
}

func NewAvailabilityChecker(bookings BookingRepository, maint MaintenanceGuard) *AvailabilityChecker {
	return &AvailabilityChecker{bookings: bookings, maint: maint}
}

func (a *AvailabilityChecker) IsAvailable(ctx context.Context, room *domain.Room, checkIn, checkOut time.Time) (bool, error) {
	return a.isAvailableExcluding(ctx, room, checkIn, checkOut, "")
}

// IsAvailableForUpdate ignores the booking being moved, so shrinking or
// shifting a stay within its own window is never refused.
func (a *AvailabilityChecker) IsAvailableForUpdate(ctx context.Context, room *domain.Room, checkIn, checkOut time.Time, bookingID string) (bool, error) {
	return a.isAvailableExcluding(ctx, room, checkIn, checkOut, bookingID)
}

func (a *AvailabilityChecker) isAvailableExcluding(ctx context.Context, room *domain.Room, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	if room.ActiveRoom == domain.Inactive {
		return false, nil
	}

	existing, err := a.bookings.ListByRoom(ctx, room.RoomID)
	if err != nil {
		return false, err
	}
	for _, b := range existing {
		// Cancelled or soft-deleted bookings never block a new one.
		if !b.Live() || b.BookingID == excludeID {
			continue
		}
		if domain.Overlaps(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			return false, nil
		}
	}

	conflict, err := a.maint.HasConflict(ctx, room.RoomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}
