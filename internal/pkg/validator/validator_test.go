package validator

import (
	"testing"

	"roomstay/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidate_ValidRoomType(t *testing.T) {
	errs := Validate(&domain.RoomType{
		Name:     "Standard",
		Price:    100000,
		Capacity: 2,
		Floor:    2,
	})
	assert.Nil(t, errs)
}

func TestValidate_CollectsFieldRules(t *testing.T) {
	errs := Validate(&domain.RoomType{
		Name:     "Standard",
		Price:    0,
		Capacity: -1,
		Floor:    2,
	})
	assert.Equal(t, FieldErrors{
		"Price":    "required",
		"Capacity": "gt",
	}, errs)
}

func TestFieldErrors_ErrorIsStableAcrossFields(t *testing.T) {
	errs := FieldErrors{"Price": "required", "Capacity": "gt"}
	assert.Equal(t, "Capacity: gt; Price: required", errs.Error())
}
