package booking

import "errors"

var (
	ErrNotFound            = errors.New("booking not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrInvalidDateRange    = errors.New("invalid booking date range")
	ErrCapacityExceeded    = errors.New("capacity exceeds room type capacity")
	ErrMaintenanceConflict = errors.New("room has maintenance scheduled during selected dates")
	ErrBookingConflict     = errors.New("room is already booked for the selected dates")
	ErrPriceLocked         = errors.New("price cannot change on a confirmed booking")
	ErrBookingCancelled    = errors.New("cancelled booking cannot be updated")
	ErrNotPayable          = errors.New("only waiting bookings can be paid")
	ErrNotCancellable      = errors.New("booking cannot be cancelled in its current status")
	ErrForbidden           = errors.New("actor is not allowed to access this booking")
	ErrValidation          = errors.New("validation error")
)
