package property

import "errors"

var (
	ErrNotFound     = errors.New("property not found")
	ErrRoomNotFound = errors.New("room not found")
	ErrValidation   = errors.New("validation error")
	ErrForbidden    = errors.New("actor does not own this property")
)
