package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleOwner      UserRole = "owner"
	RoleSuperadmin UserRole = "superadmin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor identifies who is performing an operation. Services receive it as a
// plain value so authorization decisions stay explicit and testable.
type Actor struct {
	UserID uuid.UUID
	Role   UserRole
}

func (a Actor) IsCustomer() bool   { return a.Role == RoleCustomer }
func (a Actor) IsOwner() bool      { return a.Role == RoleOwner }
func (a Actor) IsSuperadmin() bool { return a.Role == RoleSuperadmin }
