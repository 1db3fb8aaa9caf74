package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/citycare/mydoctor-api/internal/middleware"
	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/session"
	"github.com/citycare/mydoctor-api/internal/stores"
)

type CreateAppointmentRequest struct {
	PatientID       string `json:"patientId"`
	DoctorID        string `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate" binding:"required"` // RFC3339
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
}

// CreateAppointment books a SCHEDULED appointment. A patient books for
// themselves; a doctor books a patient with themselves; staff name both
// sides explicitly.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	when, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointmentDate, use RFC3339"})
		return
	}

	subjectID := c.GetString(middleware.CtxSubjectID)
	subjectType := c.GetString(middleware.CtxSubjectType)

	patientID := req.PatientID
	doctorID := req.DoctorID
	switch subjectType {
	case session.SubjectPatient:
		patientID = subjectID
	case session.SubjectDoctor:
		doctorID = subjectID
	}
	if patientID == "" || doctorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patientId and doctorId are required"})
		return
	}

	patient, err := h.Patients.GetByID(patientID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Println("CreateAppointment: patient lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment, please try again"})
		return
	}

	doctor, err := h.Doctors.GetByID(doctorID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		log.Println("CreateAppointment: doctor lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment, please try again"})
		return
	}

	apt := &models.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: when,
		Status:          models.StatusScheduled,
	}
	if req.Reason != "" {
		apt.Reason = &req.Reason
	}
	if req.Notes != "" {
		apt.Notes = &req.Notes
	}

	if err := h.Appointments.Create(apt); err != nil {
		log.Println("CreateAppointment: insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment, please try again"})
		return
	}

	h.NotificationSvc.SendAppointmentConfirmationSMS(patient, doctor, apt)

	c.JSON(http.StatusCreated, apt)
}

// GetAppointments lists appointments scoped by role: a patient sees their
// own, a doctor sees their own schedule, staff see everything (optionally
// narrowed by patientId).
func (h *Handler) GetAppointments(c *gin.Context) {
	filter := stores.AppointmentFilter{}

	switch c.GetString(middleware.CtxSubjectType) {
	case session.SubjectPatient:
		filter.PatientID = c.GetString(middleware.CtxSubjectID)
	case session.SubjectDoctor:
		filter.DoctorID = c.GetString(middleware.CtxSubjectID)
	default:
		if patientID := c.Query("patientId"); patientID != "" {
			filter.PatientID = patientID
		}
		if doctorID := c.Query("doctorId"); doctorID != "" {
			filter.DoctorID = doctorID
		}
	}

	if startDateStr := c.Query("startDate"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			filter.From = startDate
		}
	}
	if endDateStr := c.Query("endDate"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			// Include the entire end day, down to its last instant.
			filter.To = endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}
	if status := c.Query("status"); status != "" {
		filter.Status = models.AppointmentStatus(status)
	}

	appointments, err := h.Appointments.List(filter)
	if err != nil {
		log.Println("GetAppointments: query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}

	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}
	c.JSON(http.StatusOK, appointments)
}
