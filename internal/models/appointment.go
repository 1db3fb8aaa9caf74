package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

type Appointment struct {
	ID              string            `gorm:"primaryKey" json:"id"`
	PatientID       string            `gorm:"index;not null" json:"patientId"`
	Patient         Patient           `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient"`
	DoctorID        string            `gorm:"index;not null" json:"doctorId"`
	Doctor          Doctor            `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointmentDate"`
	Status          AppointmentStatus `gorm:"not null;default:'SCHEDULED'" json:"status"`
	Reason          *string           `json:"reason"`
	Notes           *string           `json:"notes"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
