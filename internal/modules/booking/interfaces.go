package booking

import (
	"context"
	"time"

	"roomstay/internal/domain"

	"github.com/google/uuid"
)

// BookingRepository defines the persistence operations the lifecycle needs
type BookingRepository interface {
	CreateWithRoomHold(ctx context.Context, b *domain.Booking) error
	SaveWithRoomHold(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListActive(ctx context.Context) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to int) error
	CancelAndRelease(ctx context.Context, bookingID, roomID string, fromStatus int) error
	ListForAutoCheckout(ctx context.Context, now time.Time) ([]domain.Booking, error)
	FinalizeCheckout(ctx context.Context, bookingID, roomID, propertyID string, amount int, now time.Time) (bool, error)
}

// RoomRepository defines the room lookups the lifecycle needs
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// CustomerStore keeps the customer directory in sync with booking requests
type CustomerStore interface {
	Upsert(ctx context.Context, c *domain.Customer) error
}

// MaintenanceGuard answers whether a window collides with scheduled
// maintenance on a room
type MaintenanceGuard interface {
	HasConflict(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

// PropertyDirectory resolves the property and owner behind a room
type PropertyDirectory interface {
	PropertyForRoom(ctx context.Context, roomID string) (propertyID string, ownerID uuid.UUID, err error)
}

// RevenueLedger moves money on a property's cumulative income
type RevenueLedger interface {
	Credit(ctx context.Context, propertyID string, amount int) error
	Debit(ctx context.Context, propertyID string, amount int) error
}

// Invoice is the payload handed to the billing collaborator.
type Invoice struct {
	CustomerID  uuid.UUID
	BookingID   string
	Description string
	Amount      int
}

// InvoiceSender hands an invoice to the billing worker. Implementations must
// not block and must never surface delivery failures to the caller.
type InvoiceSender interface {
	Send(inv Invoice)
}

// NotificationSender pushes booking events to interested owners
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, ownerID uuid.UUID, bookingID, roomID string, checkIn time.Time) error
	NotifyBookingPaid(ctx context.Context, ownerID uuid.UUID, bookingID string, amount int) error
	NotifyBookingCancelled(ctx context.Context, ownerID uuid.UUID, bookingID string) error
}
