package handlers

import (
	"github.com/citycare/mydoctor-api/internal/auth"
	"github.com/citycare/mydoctor-api/internal/services"
	"github.com/citycare/mydoctor-api/internal/session"
	"github.com/citycare/mydoctor-api/internal/stores"
)

// Handler carries the stores and services every endpoint needs. All handler
// functions are methods of this struct.
type Handler struct {
	Users        stores.UserStore
	Doctors      stores.DoctorStore
	Patients     stores.PatientStore
	Appointments stores.AppointmentStore
	Records      stores.MedicalRecordStore

	Verifier        *auth.Verifier
	Sessions        *session.Manager
	NotificationSvc *services.NotificationService
	JWTSecret       []byte
}

func NewHandler(
	users stores.UserStore,
	doctors stores.DoctorStore,
	patients stores.PatientStore,
	appointments stores.AppointmentStore,
	records stores.MedicalRecordStore,
	sessions *session.Manager,
	notificationSvc *services.NotificationService,
	jwtSecret []byte,
) *Handler {
	return &Handler{
		Users:           users,
		Doctors:         doctors,
		Patients:        patients,
		Appointments:    appointments,
		Records:         records,
		Verifier:        auth.NewVerifier(users, doctors, patients),
		Sessions:        sessions,
		NotificationSvc: notificationSvc,
		JWTSecret:       jwtSecret,
	}
}
