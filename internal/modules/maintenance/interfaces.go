package maintenance

import (
	"context"
	"time"

	"roomstay/internal/domain"
)

// MaintenanceRepository defines the persistence operations for maintenance
// windows
type MaintenanceRepository interface {
	Schedule(ctx context.Context, m *domain.Maintenance) error
	ExistsOverlapping(ctx context.Context, roomID string, start, end time.Time) (bool, error)
	ListByRoom(ctx context.Context, roomID string) ([]domain.Maintenance, error)
	ListAll(ctx context.Context) ([]domain.Maintenance, error)
}

// BookingConflicts answers whether live bookings intersect a window
type BookingConflicts interface {
	ExistsLiveOverlap(ctx context.Context, roomID string, start, end time.Time) (bool, error)
}

// RoomRepository is the subset of room lookups scheduling needs
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}
