package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/citycare/mydoctor-api/internal/models"
)

type UserStore struct{ mock.Mock }

func (m *UserStore) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) List() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *UserStore) Create(u *models.User) error { return m.Called(u).Error(0) }

func (m *UserStore) Update(id string, updates map[string]interface{}) error {
	return m.Called(id, updates).Error(0)
}

func (m *UserStore) Delete(id string) error { return m.Called(id).Error(0) }
