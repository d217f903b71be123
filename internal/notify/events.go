package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is the wire shape pushed to websocket subscribers.
type Event struct {
	Type      string    `json:"type"`
	BookingID string    `json:"booking_id"`
	RoomID    string    `json:"room_id,omitempty"`
	CheckIn   string    `json:"check_in,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

const (
	EventBookingCreated   = "booking_created"
	EventBookingPaid      = "booking_paid"
	EventBookingCancelled = "booking_cancelled"
)

// Notifier delivers booking events to property owners over the hub.
// Delivery is best effort: an offline owner misses the event.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyBookingCreated(ctx context.Context, ownerID uuid.UUID, bookingID, roomID string, checkIn time.Time) error {
	n.hub.SendToUser(ownerID, Event{
		Type:      EventBookingCreated,
		BookingID: bookingID,
		RoomID:    roomID,
		CheckIn:   checkIn.Format("2006-01-02"),
		SentAt:    time.Now(),
	})
	return nil
}

func (n *Notifier) NotifyBookingPaid(ctx context.Context, ownerID uuid.UUID, bookingID string, amount int) error {
	n.hub.SendToUser(ownerID, Event{
		Type:      EventBookingPaid,
		BookingID: bookingID,
		Amount:    amount,
		SentAt:    time.Now(),
	})
	return nil
}

func (n *Notifier) NotifyBookingCancelled(ctx context.Context, ownerID uuid.UUID, bookingID string) error {
	n.hub.SendToUser(ownerID, Event{
		Type:      EventBookingCancelled,
		BookingID: bookingID,
		SentAt:    time.Now(),
	})
	return nil
}
