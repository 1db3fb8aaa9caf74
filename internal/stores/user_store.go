package stores

import (
	"github.com/citycare/mydoctor-api/internal/models"

	"gorm.io/gorm"
)

// UserStore abstracts persistence for the staff user table.
type UserStore interface {
	// FindByEmail returns a user if it exists, or ErrNotFound.
	FindByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	List() ([]models.User, error)
	Create(u *models.User) error
	// Update applies the given column updates; ErrNotFound if no row matched.
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
}

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) GetByID(id string) (*models.User, error) {
	var u models.User
	if err := s.DB.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormUserStore) Create(u *models.User) error {
	return s.DB.Create(u).Error
}

func (s *GormUserStore) Update(id string, updates map[string]interface{}) error {
	res := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormUserStore) Delete(id string) error {
	res := s.DB.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
