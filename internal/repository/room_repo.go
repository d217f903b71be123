package repository

import (
	"context"
	"time"

	"roomstay/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	RoomID             string     `gorm:"column:room_id;primaryKey"`
	Name               string     `gorm:"column:name"`
	AvailabilityStatus int        `gorm:"column:availability_status"`
	ActiveRoom         int        `gorm:"column:active_room"`
	MaintenanceStart   *time.Time `gorm:"column:maintenance_start"`
	MaintenanceEnd     *time.Time `gorm:"column:maintenance_end"`
	RoomTypeID         string     `gorm:"column:room_type_id;index"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		RoomID:             m.RoomID,
		Name:               m.Name,
		AvailabilityStatus: m.AvailabilityStatus,
		ActiveRoom:         m.ActiveRoom,
		MaintenanceStart:   m.MaintenanceStart,
		MaintenanceEnd:     m.MaintenanceEnd,
		RoomTypeID:         m.RoomTypeID,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		RoomID:             r.RoomID,
		Name:               r.Name,
		AvailabilityStatus: r.AvailabilityStatus,
		ActiveRoom:         r.ActiveRoom,
		MaintenanceStart:   r.MaintenanceStart,
		MaintenanceEnd:     r.MaintenanceEnd,
		RoomTypeID:         r.RoomTypeID,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*room = *toDomainRoom(m)
	return nil
}

// GetByID loads the room together with its room type so callers can reach
// the nightly price, capacity and owning property.
func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	var m roomModel
	if err := r.db.WithContext(ctx).First(&m, "room_id = ?", id).Error; err != nil {
		return nil, err
	}
	room := toDomainRoom(m)

	var tm roomTypeModel
	if err := r.db.WithContext(ctx).First(&tm, "room_type_id = ?", m.RoomTypeID).Error; err != nil {
		return nil, err
	}
	room.RoomType = toDomainRoomType(tm)
	return room, nil
}

func (r *RoomRepository) ListByRoomType(ctx context.Context, roomTypeID string) ([]domain.Room, error) {
	var ms []roomModel
	if err := r.db.WithContext(ctx).
		Where("room_type_id = ? AND active_room = ?", roomTypeID, domain.Active).
		Order("room_id").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) SetAvailability(ctx context.Context, roomID string, status int) error {
	return r.db.WithContext(ctx).Model(&roomModel{}).
		Where("room_id = ?", roomID).
		Updates(map[string]any{"availability_status": status, "updated_at": time.Now()}).Error
}

// SetMaintenanceWindow denormalizes the current maintenance window onto the
// room row and marks it unavailable.
func (r *RoomRepository) SetMaintenanceWindow(ctx context.Context, tx *gorm.DB, roomID string, start, end time.Time) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Model(&roomModel{}).
		Where("room_id = ?", roomID).
		Updates(map[string]any{
			"maintenance_start":   start,
			"maintenance_end":     end,
			"availability_status": domain.RoomUnavailable,
			"updated_at":          time.Now(),
		}).Error
}

func (r *RoomRepository) Deactivate(ctx context.Context, roomID string) error {
	return r.db.WithContext(ctx).Model(&roomModel{}).
		Where("room_id = ?", roomID).
		Updates(map[string]any{"active_room": domain.Inactive, "updated_at": time.Now()}).Error
}

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

type roomTypeModel struct {
	RoomTypeID   string    `gorm:"column:room_type_id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Price        int       `gorm:"column:price"`
	Description  string    `gorm:"column:description"`
	Capacity     int       `gorm:"column:capacity"`
	Facility     string    `gorm:"column:facility"`
	Floor        int       `gorm:"column:floor"`
	ActiveStatus int       `gorm:"column:active_status"`
	PropertyID   string    `gorm:"column:property_id;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (roomTypeModel) TableName() string { return "room_types" }

func toDomainRoomType(m roomTypeModel) *domain.RoomType {
	return &domain.RoomType{
		RoomTypeID:   m.RoomTypeID,
		Name:         m.Name,
		Price:        m.Price,
		Description:  m.Description,
		Capacity:     m.Capacity,
		Facility:     m.Facility,
		Floor:        m.Floor,
		ActiveStatus: m.ActiveStatus,
		PropertyID:   m.PropertyID,
	}
}

func toRoomTypeModel(t *domain.RoomType) roomTypeModel {
	return roomTypeModel{
		RoomTypeID:   t.RoomTypeID,
		Name:         t.Name,
		Price:        t.Price,
		Description:  t.Description,
		Capacity:     t.Capacity,
		Facility:     t.Facility,
		Floor:        t.Floor,
		ActiveStatus: t.ActiveStatus,
		PropertyID:   t.PropertyID,
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, t *domain.RoomType) error {
	m := toRoomTypeModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*t = *toDomainRoomType(m)
	return nil
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id string) (*domain.RoomType, error) {
	var m roomTypeModel
	if err := r.db.WithContext(ctx).
		First(&m, "room_type_id = ? AND active_status = ?", id, domain.Active).Error; err != nil {
		return nil, err
	}
	return toDomainRoomType(m), nil
}

func (r *RoomTypeRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.RoomType, error) {
	var ms []roomTypeModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ? AND active_status = ?", propertyID, domain.Active).
		Order("room_type_id").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.RoomType, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoomType(m))
	}
	return out, nil
}
