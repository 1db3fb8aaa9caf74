package stores

import (
	"github.com/citycare/mydoctor-api/internal/models"

	"gorm.io/gorm"
)

type DoctorStore interface {
	FindByEmail(email string) (*models.Doctor, error)
	// FindByLicense returns a doctor by license number, or ErrNotFound.
	FindByLicense(license string) (*models.Doctor, error)
	GetByID(id string) (*models.Doctor, error)
	List() ([]models.Doctor, error)
	Create(d *models.Doctor) error
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
	Count() (int64, error)
}

// GormDoctorStore implements DoctorStore using GORM.
type GormDoctorStore struct{ DB *gorm.DB }

func (s *GormDoctorStore) FindByEmail(email string) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.DB.Where("email = ?", email).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *GormDoctorStore) FindByLicense(license string) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.DB.Where("license_number = ?", license).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *GormDoctorStore) GetByID(id string) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.DB.First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *GormDoctorStore) List() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.DB.Order("last_name ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *GormDoctorStore) Create(d *models.Doctor) error {
	return s.DB.Create(d).Error
}

func (s *GormDoctorStore) Update(id string, updates map[string]interface{}) error {
	res := s.DB.Model(&models.Doctor{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormDoctorStore) Delete(id string) error {
	res := s.DB.Delete(&models.Doctor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormDoctorStore) Count() (int64, error) {
	var n int64
	err := s.DB.Model(&models.Doctor{}).Count(&n).Error
	return n, err
}
