package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is the self-service principal table. Like Doctor it carries no role
// column. Most clinical attributes are optional.
type Patient struct {
	ID                    string     `gorm:"primaryKey" json:"id"`
	Email                 string     `gorm:"uniqueIndex;not null" json:"email"`
	Password              string     `gorm:"not null" json:"-"`
	FirstName             string     `gorm:"not null" json:"firstName"`
	LastName              string     `gorm:"not null" json:"lastName"`
	Phone                 string     `json:"phone"`
	DateOfBirth           *time.Time `json:"dateOfBirth"`
	Gender                *string    `json:"gender"`
	BloodType             *string    `json:"bloodType"`
	Allergies             *string    `json:"allergies"`
	MedicalHistory        *string    `json:"medicalHistory"`
	InsuranceProvider     *string    `json:"insuranceProvider"`
	InsuranceNumber       *string    `json:"insuranceNumber"`
	EmergencyContactName  *string    `json:"emergencyContactName"`
	EmergencyContactPhone *string    `json:"emergencyContactPhone"`
	LastVisit             *time.Time `json:"lastVisit"`
	IsActive              bool       `gorm:"default:true" json:"isActive"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
