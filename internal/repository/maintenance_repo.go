package repository

import (
	"context"
	"time"

	"roomstay/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

type maintenanceModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RoomID       string    `gorm:"column:room_id;index"`
	StartAt      time.Time `gorm:"column:start_at"`
	EndAt        time.Time `gorm:"column:end_at"`
	ActiveStatus int       `gorm:"column:active_status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (maintenanceModel) TableName() string { return "maintenances" }

func toDomainMaintenance(m maintenanceModel) *domain.Maintenance {
	return &domain.Maintenance{
		ID:           m.ID,
		RoomID:       m.RoomID,
		StartAt:      m.StartAt,
		EndAt:        m.EndAt,
		ActiveStatus: m.ActiveStatus,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Schedule records the maintenance and denormalizes the window onto the room
// in a single transaction.
func (r *MaintenanceRepository) Schedule(ctx context.Context, mt *domain.Maintenance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := maintenanceModel{
			RoomID:       mt.RoomID,
			StartAt:      mt.StartAt,
			EndAt:        mt.EndAt,
			ActiveStatus: domain.Active,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		if err := tx.Model(&roomModel{}).
			Where("room_id = ?", mt.RoomID).
			Updates(map[string]any{
				"maintenance_start":   mt.StartAt,
				"maintenance_end":     mt.EndAt,
				"availability_status": domain.RoomUnavailable,
				"updated_at":          time.Now(),
			}).Error; err != nil {
			return err
		}

		*mt = *toDomainMaintenance(m)
		return nil
	})
}

// ExistsOverlapping reports whether an active maintenance on the room
// intersects the half-open [start, end) window.
func (r *MaintenanceRepository) ExistsOverlapping(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&maintenanceModel{}).
		Where("room_id = ? AND active_status = ?", roomID, domain.Active).
		Where("start_at < ? AND end_at > ?", end, start).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *MaintenanceRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Maintenance, error) {
	var ms []maintenanceModel
	if err := r.db.WithContext(ctx).
		Where("room_id = ? AND active_status = ?", roomID, domain.Active).
		Order("start_at").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapMaintenances(ms), nil
}

func (r *MaintenanceRepository) ListAll(ctx context.Context) ([]domain.Maintenance, error) {
	var ms []maintenanceModel
	if err := r.db.WithContext(ctx).
		Where("active_status = ?", domain.Active).
		Order("start_at").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapMaintenances(ms), nil
}

func mapMaintenances(ms []maintenanceModel) []domain.Maintenance {
	out := make([]domain.Maintenance, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainMaintenance(m))
	}
	return out
}
