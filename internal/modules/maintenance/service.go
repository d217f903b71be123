package maintenance

import (
	"context"
	"errors"
	"time"

	"roomstay/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	maintenances MaintenanceRepository
	bookings     BookingConflicts
	rooms        RoomRepository
}

func NewService(maintenances MaintenanceRepository, bookings BookingConflicts, rooms RoomRepository) *Service {
	return &Service{
		maintenances: maintenances,
		bookings:     bookings,
		rooms:        rooms,
	}
}

// Schedule validates and records a maintenance window. On success the room's
// denormalized window fields are set and the room is marked unavailable.
func (s *Service) Schedule(ctx context.Context, req ScheduleMaintenanceRequest) (*domain.Maintenance, error) {
	start, end, err := req.window()
	if err != nil {
		return nil, err
	}

	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	overlapping, err := s.maintenances.ExistsOverlapping(ctx, req.RoomID, start, end)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return nil, ErrOverlappingMaintenance
	}

	conflict, err := s.bookings.ExistsLiveOverlap(ctx, req.RoomID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrBookingConflict
	}

	m := &domain.Maintenance{
		RoomID:  req.RoomID,
		StartAt: start,
		EndAt:   end,
	}
	if err := s.maintenances.Schedule(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// HasConflict reports whether a candidate stay intersects any active
// maintenance on the room. Consulted by the booking lifecycle on create and
// update.
func (s *Service) HasConflict(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	return s.maintenances.ExistsOverlapping(ctx, roomID, checkIn, checkOut)
}

func (s *Service) ListByRoom(ctx context.Context, roomID string) ([]domain.Maintenance, error) {
	return s.maintenances.ListByRoom(ctx, roomID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Maintenance, error) {
	return s.maintenances.ListAll(ctx)
}
