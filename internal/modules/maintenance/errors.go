package maintenance

import "errors"

var (
	ErrRoomNotFound           = errors.New("room not found")
	ErrInvalidSchedule        = errors.New("maintenance end cannot be before start")
	ErrOverlappingMaintenance = errors.New("maintenance schedule overlaps with existing maintenance")
	ErrBookingConflict        = errors.New("maintenance schedule conflicts with existing bookings")
	ErrValidation             = errors.New("validation error")
)
