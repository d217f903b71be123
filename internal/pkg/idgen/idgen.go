// Package idgen builds the human-readable identifiers used across the API.
// Identifiers are assembled from stable parts (owner uuid tail, per-scope
// counters, floor and unit numbers) so operators can read the hierarchy off
// an id at a glance.
package idgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"roomstay/internal/domain"
)

// PropertyID returns an id of the form {PREFIX}-{LAST4_OF_OWNER_UUID}-{NNN},
// e.g. APT-c3f1-004. The counter should be the number of properties already
// created plus one.
func PropertyID(propertyType int, ownerID uuid.UUID, counter int) string {
	var prefix string
	switch propertyType {
	case domain.PropertyHotel:
		prefix = "HOT"
	case domain.PropertyVilla:
		prefix = "VIL"
	case domain.PropertyApartment:
		prefix = "APT"
	default:
		prefix = "UNK"
	}

	hex := strings.ReplaceAll(ownerID.String(), "-", "")
	return fmt.Sprintf("%s-%s-%03d", prefix, hex[len(hex)-4:], counter)
}

// RoomTypeID returns {PROPERTY_COUNTER}-{NAME}-{FLOOR}, e.g. 004-Single Room-2.
func RoomTypeID(propertyID, roomTypeName string, floor int) string {
	counter := propertyID[strings.LastIndex(propertyID, "-")+1:]
	return fmt.Sprintf("%s-%s-%d", counter, roomTypeName, floor)
}

// RoomID appends the floor-based unit number to the property id,
// e.g. APT-c3f1-004-101 for unit 1 on floor 1.
func RoomID(propertyID string, floor, unitNumber int) string {
	return fmt.Sprintf("%s-%d%02d", propertyID, floor, unitNumber)
}

// BookingID returns BOOK-{UNIT}-{YYMMDD}-{HHMM}-{SS}.{CS} where UNIT is the
// room id's trailing unit number and CS is centiseconds, e.g.
// BOOK-101-260312-1438-12.45.
func BookingID(roomID string, now time.Time) string {
	parts := strings.Split(roomID, "-")
	unit := parts[len(parts)-1]

	return fmt.Sprintf("BOOK-%s-%s-%s-%02d.%02d",
		unit,
		now.Format("060102"),
		now.Format("1504"),
		now.Second(),
		now.Nanosecond()/10_000_000,
	)
}
