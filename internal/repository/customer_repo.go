package repository

import (
	"context"
	"time"

	"roomstay/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	CustomerID string    `gorm:"column:customer_id;primaryKey"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email"`
	Phone      string    `gorm:"column:phone"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (customerModel) TableName() string { return "customers" }

// Upsert creates the customer row on first booking and refreshes the contact
// snapshot on later ones.
func (r *CustomerRepository) Upsert(ctx context.Context, c *domain.Customer) error {
	m := customerModel{
		CustomerID: c.CustomerID.String(),
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "phone", "updated_at"}),
		}).
		Create(&m).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).First(&m, "customer_id = ?", id.String()).Error; err != nil {
		return nil, err
	}
	cid, _ := uuid.Parse(m.CustomerID)
	return &domain.Customer{
		CustomerID: cid,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}
