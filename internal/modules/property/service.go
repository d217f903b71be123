package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomstay/internal/domain"
	"roomstay/internal/pkg/idgen"
	"roomstay/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	properties PropertyRepository
	roomTypes  RoomTypeRepository
	rooms      RoomRepository
	bookings   BookingConflicts
}

func NewService(properties PropertyRepository, roomTypes RoomTypeRepository, rooms RoomRepository, bookings BookingConflicts) *Service {
	return &Service{
		properties: properties,
		roomTypes:  roomTypes,
		rooms:      rooms,
		bookings:   bookings,
	}
}

// Create provisions a property with its room types and rooms. Rooms are
// numbered per floor across room types: the first room on floor 2 is 201,
// the eleventh is 211, regardless of which room type it belongs to.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreatePropertyRequest) (*domain.Property, error) {
	count, err := s.properties.Count(ctx)
	if err != nil {
		return nil, err
	}

	p := &domain.Property{
		PropertyID:   idgen.PropertyID(req.Type, actor.UserID, int(count)+1),
		PropertyName: req.PropertyName,
		Type:         req.Type,
		Address:      req.Address,
		Province:     req.Province,
		Description:  req.Description,
		ActiveStatus: domain.Active,
		OwnerName:    req.OwnerName,
		OwnerID:      actor.UserID,
	}
	if errs := validator.Validate(p); errs != nil {
		return nil, ErrValidation
	}
	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}

	floorCounter := make(map[int]int)
	totalRooms := 0

	for _, input := range req.RoomTypes {
		rt := &domain.RoomType{
			RoomTypeID:   idgen.RoomTypeID(p.PropertyID, input.Name, input.Floor),
			Name:         input.Name,
			Price:        input.Price,
			Description:  input.Description,
			Capacity:     input.Capacity,
			Facility:     input.Facility,
			Floor:        input.Floor,
			ActiveStatus: domain.Active,
			PropertyID:   p.PropertyID,
		}
		if errs := validator.Validate(rt); errs != nil {
			return nil, ErrValidation
		}
		if err := s.roomTypes.Create(ctx, rt); err != nil {
			return nil, err
		}

		for j := 0; j < input.RoomCount; j++ {
			floorCounter[input.Floor]++
			unit := floorCounter[input.Floor]

			room := &domain.Room{
				RoomID:             idgen.RoomID(p.PropertyID, input.Floor, unit),
				Name:               fmt.Sprintf("%d%02d", input.Floor, unit),
				AvailabilityStatus: domain.RoomAvailable,
				ActiveRoom:         domain.Active,
				RoomTypeID:         rt.RoomTypeID,
			}
			if err := s.rooms.Create(ctx, room); err != nil {
				return nil, err
			}
			rt.Rooms = append(rt.Rooms, *room)
			totalRooms++
		}
		p.RoomTypes = append(p.RoomTypes, *rt)
	}

	p.TotalRoom = totalRooms
	p.ActiveRoom = totalRooms
	if err := s.properties.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get loads the property with its room types and rooms.
func (s *Service) Get(ctx context.Context, id string) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rts, err := s.roomTypes.ListByProperty(ctx, p.PropertyID)
	if err != nil {
		return nil, err
	}
	for i := range rts {
		rooms, err := s.rooms.ListByRoomType(ctx, rts[i].RoomTypeID)
		if err != nil {
			return nil, err
		}
		rts[i].Rooms = rooms
	}
	p.RoomTypes = rts
	return p, nil
}

func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Property, error) {
	if actor.IsOwner() {
		return s.properties.ListByOwner(ctx, actor.UserID)
	}
	return s.properties.List(ctx)
}

// SearchAvailableRooms returns the property's rooms free for the requested
// stay. Availability is derived from live bookings, never from the
// availability flag alone.
func (s *Service) SearchAvailableRooms(ctx context.Context, propertyID string, checkIn, checkOut time.Time) ([]domain.Room, error) {
	p, err := s.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	var available []domain.Room
	for _, rt := range p.RoomTypes {
		for _, room := range rt.Rooms {
			if room.ActiveRoom != domain.Active {
				continue
			}
			conflict, err := s.bookings.ExistsLiveOverlap(ctx, room.RoomID, checkIn, checkOut)
			if err != nil {
				return nil, err
			}
			if !conflict {
				room.RoomType = &rt
				available = append(available, room)
			}
		}
	}
	return available, nil
}

// GetRoom loads a room with its room type and current maintenance window.
func (s *Service) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// DeactivateRoom soft-deletes a room and keeps the property counters in step.
func (s *Service) DeactivateRoom(ctx context.Context, actor domain.Actor, roomID string) error {
	propertyID, err := s.properties.PropertyIDByRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	if actor.IsOwner() {
		p, err := s.properties.GetByID(ctx, propertyID)
		if err != nil {
			return err
		}
		if p.OwnerID != actor.UserID {
			return ErrForbidden
		}
	}

	if err := s.rooms.Deactivate(ctx, roomID); err != nil {
		return err
	}
	return s.properties.AdjustRoomCounts(ctx, propertyID, 0, -1)
}
