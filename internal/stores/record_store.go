package stores

import (
	"github.com/citycare/mydoctor-api/internal/models"

	"gorm.io/gorm"
)

// RecordFilter narrows a medical-record listing. Zero values mean
// "no constraint".
type RecordFilter struct {
	PatientID string
	DoctorID  string
}

type MedicalRecordStore interface {
	Create(r *models.MedicalRecord) error
	List(f RecordFilter) ([]models.MedicalRecord, error)
}

// GormMedicalRecordStore implements MedicalRecordStore using GORM.
type GormMedicalRecordStore struct{ DB *gorm.DB }

func (s *GormMedicalRecordStore) Create(r *models.MedicalRecord) error {
	return s.DB.Create(r).Error
}

func (s *GormMedicalRecordStore) List(f RecordFilter) ([]models.MedicalRecord, error) {
	q := s.DB.Preload("Patient").Preload("Doctor").
		Order("visit_date DESC")

	if f.PatientID != "" {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.DoctorID != "" {
		q = q.Where("doctor_id = ?", f.DoctorID)
	}

	var records []models.MedicalRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
