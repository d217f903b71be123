package property

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger is the single writer of a property's cumulative income. Credits
// come from confirmed and auto-completed bookings, debits from cancelling a
// previously confirmed booking.
type Ledger struct {
	properties PropertyRepository
}

func NewLedger(properties PropertyRepository) *Ledger {
	return &Ledger{properties: properties}
}

func (l *Ledger) Credit(ctx context.Context, propertyID string, amount int) error {
	return l.properties.AddIncome(ctx, propertyID, amount)
}

func (l *Ledger) Debit(ctx context.Context, propertyID string, amount int) error {
	return l.properties.AddIncome(ctx, propertyID, -amount)
}

// PropertyForRoom resolves the property id and owner behind a room.
func (l *Ledger) PropertyForRoom(ctx context.Context, roomID string) (string, uuid.UUID, error) {
	propertyID, err := l.properties.PropertyIDByRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", uuid.Nil, ErrRoomNotFound
		}
		return "", uuid.Nil, err
	}
	p, err := l.properties.GetByID(ctx, propertyID)
	if err != nil {
		return "", uuid.Nil, err
	}
	return p.PropertyID, p.OwnerID, nil
}
