package repository

import (
	"context"
	"time"

	"roomstay/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

type propertyModel struct {
	PropertyID   string    `gorm:"column:property_id;primaryKey"`
	PropertyName string    `gorm:"column:property_name"`
	Type         int       `gorm:"column:type"`
	Address      string    `gorm:"column:address"`
	Province     int       `gorm:"column:province"`
	Description  string    `gorm:"column:description"`
	TotalRoom    int       `gorm:"column:total_room"`
	ActiveRoom   int       `gorm:"column:active_room"`
	Income       int       `gorm:"column:income"`
	ActiveStatus int       `gorm:"column:active_status"`
	OwnerName    string    `gorm:"column:owner_name"`
	OwnerID      string    `gorm:"column:owner_id;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (propertyModel) TableName() string { return "properties" }

func toDomainProperty(m propertyModel) *domain.Property {
	oid, _ := uuid.Parse(m.OwnerID)

	return &domain.Property{
		PropertyID:   m.PropertyID,
		PropertyName: m.PropertyName,
		Type:         m.Type,
		Address:      m.Address,
		Province:     m.Province,
		Description:  m.Description,
		TotalRoom:    m.TotalRoom,
		ActiveRoom:   m.ActiveRoom,
		Income:       m.Income,
		ActiveStatus: m.ActiveStatus,
		OwnerName:    m.OwnerName,
		OwnerID:      oid,
	}
}

func toPropertyModel(p *domain.Property) propertyModel {
	return propertyModel{
		PropertyID:   p.PropertyID,
		PropertyName: p.PropertyName,
		Type:         p.Type,
		Address:      p.Address,
		Province:     p.Province,
		Description:  p.Description,
		TotalRoom:    p.TotalRoom,
		ActiveRoom:   p.ActiveRoom,
		Income:       p.Income,
		ActiveStatus: p.ActiveStatus,
		OwnerName:    p.OwnerName,
		OwnerID:      p.OwnerID.String(),
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	m := toPropertyModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainProperty(m)
	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var m propertyModel
	if err := r.db.WithContext(ctx).
		First(&m, "property_id = ? AND active_status = ?", id, domain.Active).Error; err != nil {
		return nil, err
	}
	return toDomainProperty(m), nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	var ms []propertyModel
	if err := r.db.WithContext(ctx).
		Where("active_status = ?", domain.Active).
		Order("created_at").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Property, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainProperty(m))
	}
	return out, nil
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error) {
	var ms []propertyModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND active_status = ?", ownerID.String(), domain.Active).
		Order("created_at").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Property, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainProperty(m))
	}
	return out, nil
}

func (r *PropertyRepository) Save(ctx context.Context, p *domain.Property) error {
	m := toPropertyModel(p)
	m.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(&m).Error
}

// AddIncome atomically shifts the property's income. Amount may be negative
// for refunds on cancelled confirmed bookings.
func (r *PropertyRepository) AddIncome(ctx context.Context, propertyID string, amount int) error {
	return r.db.WithContext(ctx).Model(&propertyModel{}).
		Where("property_id = ?", propertyID).
		Updates(map[string]any{
			"income":     gorm.Expr("income + ?", amount),
			"updated_at": time.Now(),
		}).Error
}

func (r *PropertyRepository) AdjustRoomCounts(ctx context.Context, propertyID string, totalDelta, activeDelta int) error {
	return r.db.WithContext(ctx).Model(&propertyModel{}).
		Where("property_id = ?", propertyID).
		Updates(map[string]any{
			"total_room":  gorm.Expr("total_room + ?", totalDelta),
			"active_room": gorm.Expr("active_room + ?", activeDelta),
			"updated_at":  time.Now(),
		}).Error
}

// Count spans inactive properties too, so generated property ids never
// collide after a deactivation.
func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&propertyModel{}).Count(&cnt).Error
	return cnt, err
}

// PropertyIDByRoom resolves which property a room belongs to.
func (r *PropertyRepository) PropertyIDByRoom(ctx context.Context, roomID string) (string, error) {
	var pid string
	q := `
SELECT rt.property_id
FROM rooms r
JOIN room_types rt ON rt.room_type_id = r.room_type_id
WHERE r.room_id = ?
`
	if err := r.db.WithContext(ctx).Raw(q, roomID).Scan(&pid).Error; err != nil {
		return "", err
	}
	if pid == "" {
		return "", gorm.ErrRecordNotFound
	}
	return pid, nil
}
