package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor has no role column — being in this table is what makes someone a
// doctor. License numbers are unique across the clinic.
type Doctor struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	FirstName      string    `gorm:"not null" json:"firstName"`
	LastName       string    `gorm:"not null" json:"lastName"`
	Specialization string    `gorm:"not null" json:"specialization"`
	LicenseNumber  string    `gorm:"uniqueIndex;not null" json:"licenseNumber"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Department     *string   `json:"department"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// FullName is the display name used in session views and notifications.
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
