package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/citycare/mydoctor-api/internal/models"
)

type DoctorStore struct{ mock.Mock }

func (m *DoctorStore) FindByEmail(email string) (*models.Doctor, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *DoctorStore) FindByLicense(license string) (*models.Doctor, error) {
	args := m.Called(license)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *DoctorStore) GetByID(id string) (*models.Doctor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *DoctorStore) List() ([]models.Doctor, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *DoctorStore) Create(d *models.Doctor) error { return m.Called(d).Error(0) }

func (m *DoctorStore) Update(id string, updates map[string]interface{}) error {
	return m.Called(id, updates).Error(0)
}

func (m *DoctorStore) Delete(id string) error { return m.Called(id).Error(0) }

func (m *DoctorStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
