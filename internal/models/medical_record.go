package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicalRecord is written by a doctor for a patient after a visit. Records
// are append-only in the current action set.
type MedicalRecord struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	PatientID    string    `gorm:"index;not null" json:"patientId"`
	Patient      Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient"`
	DoctorID     string    `gorm:"index;not null" json:"doctorId"`
	Doctor       Doctor    `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor"`
	VisitDate    time.Time `gorm:"not null" json:"visitDate"`
	Diagnosis    string    `gorm:"not null" json:"diagnosis"`
	Treatment    *string   `json:"treatment"`
	Prescription *string   `json:"prescription"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (r *MedicalRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
