package stores

import (
	"time"

	"github.com/citycare/mydoctor-api/internal/models"

	"gorm.io/gorm"
)

// AppointmentFilter narrows an appointment listing. Zero values mean
// "no constraint".
type AppointmentFilter struct {
	PatientID string
	DoctorID  string
	Status    models.AppointmentStatus
	From      time.Time
	To        time.Time
}

type AppointmentStore interface {
	Create(a *models.Appointment) error
	List(f AppointmentFilter) ([]models.Appointment, error)
	// MarkNoShows flips SCHEDULED appointments dated before cutoff to NO_SHOW
	// and returns how many rows changed.
	MarkNoShows(cutoff time.Time) (int64, error)
	Count() (int64, error)
}

// GormAppointmentStore implements AppointmentStore using GORM.
type GormAppointmentStore struct{ DB *gorm.DB }

func (s *GormAppointmentStore) Create(a *models.Appointment) error {
	return s.DB.Create(a).Error
}

func (s *GormAppointmentStore) List(f AppointmentFilter) ([]models.Appointment, error) {
	q := s.DB.Preload("Patient").Preload("Doctor").
		Order("appointment_date DESC")

	if f.PatientID != "" {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.DoctorID != "" {
		q = q.Where("doctor_id = ?", f.DoctorID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.From.IsZero() {
		q = q.Where("appointment_date >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("appointment_date <= ?", f.To)
	}

	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *GormAppointmentStore) MarkNoShows(cutoff time.Time) (int64, error) {
	res := s.DB.Model(&models.Appointment{}).
		Where("status = ? AND appointment_date < ?", models.StatusScheduled, cutoff).
		Update("status", models.StatusNoShow)
	return res.RowsAffected, res.Error
}

func (s *GormAppointmentStore) Count() (int64, error) {
	var n int64
	err := s.DB.Model(&models.Appointment{}).Count(&n).Error
	return n, err
}
