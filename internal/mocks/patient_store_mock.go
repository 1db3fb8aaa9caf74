package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/citycare/mydoctor-api/internal/models"
)

type PatientStore struct{ mock.Mock }

func (m *PatientStore) FindByEmail(email string) (*models.Patient, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *PatientStore) GetByID(id string) (*models.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *PatientStore) List() ([]models.Patient, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *PatientStore) Create(p *models.Patient) error { return m.Called(p).Error(0) }

func (m *PatientStore) Update(id string, updates map[string]interface{}) error {
	return m.Called(id, updates).Error(0)
}

func (m *PatientStore) Delete(id string) error { return m.Called(id).Error(0) }

func (m *PatientStore) TouchLastVisit(id string, visit time.Time) error {
	return m.Called(id, visit).Error(0)
}

func (m *PatientStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
