package property

import (
	"context"
	"time"

	"roomstay/internal/domain"

	"github.com/google/uuid"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error)
	Save(ctx context.Context, p *domain.Property) error
	AddIncome(ctx context.Context, propertyID string, amount int) error
	AdjustRoomCounts(ctx context.Context, propertyID string, totalDelta, activeDelta int) error
	Count(ctx context.Context) (int64, error)
	PropertyIDByRoom(ctx context.Context, roomID string) (string, error)
}

type RoomTypeRepository interface {
	Create(ctx context.Context, t *domain.RoomType) error
	GetByID(ctx context.Context, id string) (*domain.RoomType, error)
	ListByProperty(ctx context.Context, propertyID string) ([]domain.RoomType, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	ListByRoomType(ctx context.Context, roomTypeID string) ([]domain.Room, error)
	Deactivate(ctx context.Context, roomID string) error
}

// BookingConflicts lets room search skip rooms whose live bookings intersect
// the requested stay
type BookingConflicts interface {
	ExistsLiveOverlap(ctx context.Context, roomID string, start, end time.Time) (bool, error)
}
