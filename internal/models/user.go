package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the authorization role attached to a session. ADMIN, STAFF and
// PATIENT are stored on the staff user table; DOCTOR is synthetic — a doctor
// row has no role column, the role is implied by table membership.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStaff   Role = "STAFF"
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
)

// User is the generic system-user table (admins and staff). The PATIENT role
// value exists on this table but real patients live in their own table.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Hide from JSON responses
	Role      Role      `gorm:"not null;default:'STAFF'" json:"role"`
	Phone     string    `json:"phone"` // Optional, can be empty
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
