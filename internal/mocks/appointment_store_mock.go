package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/stores"
)

type AppointmentStore struct{ mock.Mock }

func (m *AppointmentStore) Create(a *models.Appointment) error { return m.Called(a).Error(0) }

func (m *AppointmentStore) List(f stores.AppointmentFilter) ([]models.Appointment, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *AppointmentStore) MarkNoShows(cutoff time.Time) (int64, error) {
	args := m.Called(cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AppointmentStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MedicalRecordStore struct{ mock.Mock }

func (m *MedicalRecordStore) Create(r *models.MedicalRecord) error { return m.Called(r).Error(0) }

func (m *MedicalRecordStore) List(f stores.RecordFilter) ([]models.MedicalRecord, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MedicalRecord), args.Error(1)
}
