package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrOverlappingBooking is returned when the in-transaction re-check
	// finds a live booking intersecting the requested window.
	ErrOverlappingBooking = errors.New("overlapping booking for room")

	// ErrStaleStatus is returned when a guarded status transition matched
	// no row, i.e. the booking changed under a concurrent request.
	ErrStaleStatus = errors.New("booking status changed concurrently")
)

// Models lists every persisted model for AutoMigrate.
func Models() []any {
	return []any{
		&userModel{},
		&customerModel{},
		&propertyModel{},
		&roomTypeModel{},
		&roomModel{},
		&bookingModel{},
		&maintenanceModel{},
	}
}

// lockForUpdate adds a row-level lock on PostgreSQL. SQLite serializes
// writers on its own and rejects FOR UPDATE, so the clause is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
