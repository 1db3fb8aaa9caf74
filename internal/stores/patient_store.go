package stores

import (
	"time"

	"github.com/citycare/mydoctor-api/internal/models"

	"gorm.io/gorm"
)

type PatientStore interface {
	FindByEmail(email string) (*models.Patient, error)
	GetByID(id string) (*models.Patient, error)
	List() ([]models.Patient, error)
	Create(p *models.Patient) error
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
	// TouchLastVisit records the most recent visit date for a patient.
	TouchLastVisit(id string, visit time.Time) error
	Count() (int64, error)
}

// GormPatientStore implements PatientStore using GORM.
type GormPatientStore struct{ DB *gorm.DB }

func (s *GormPatientStore) FindByEmail(email string) (*models.Patient, error) {
	var p models.Patient
	if err := s.DB.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormPatientStore) GetByID(id string) (*models.Patient, error) {
	var p models.Patient
	if err := s.DB.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormPatientStore) List() ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.DB.Order("last_name ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *GormPatientStore) Create(p *models.Patient) error {
	return s.DB.Create(p).Error
}

func (s *GormPatientStore) Update(id string, updates map[string]interface{}) error {
	res := s.DB.Model(&models.Patient{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormPatientStore) Delete(id string) error {
	res := s.DB.Delete(&models.Patient{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormPatientStore) TouchLastVisit(id string, visit time.Time) error {
	return s.DB.Model(&models.Patient{}).Where("id = ?", id).
		Update("last_visit", visit).Error
}

func (s *GormPatientStore) Count() (int64, error) {
	var n int64
	err := s.DB.Model(&models.Patient{}).Count(&n).Error
	return n, err
}
