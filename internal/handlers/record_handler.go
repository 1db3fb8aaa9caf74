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

type CreateRecordRequest struct {
	PatientID    string `json:"patientId" binding:"required"`
	VisitDate    string `json:"visitDate" binding:"required"` // RFC3339
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Treatment    string `json:"treatment"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

// CreateRecord writes a medical record. Only a doctor can author one, and
// always as themselves.
func (h *Handler) CreateRecord(c *gin.Context) {
	if c.GetString(middleware.CtxSubjectType) != session.SubjectDoctor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors can create medical records"})
		return
	}
	doctorID := c.GetString(middleware.CtxSubjectID)

	var req CreateRecordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visitDate, err := time.Parse(time.RFC3339, req.VisitDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visitDate, use RFC3339"})
		return
	}

	if _, err := h.Patients.GetByID(req.PatientID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Println("CreateRecord: patient lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record, please try again"})
		return
	}

	record := &models.MedicalRecord{
		PatientID: req.PatientID,
		DoctorID:  doctorID,
		VisitDate: visitDate,
		Diagnosis: req.Diagnosis,
	}
	if req.Treatment != "" {
		record.Treatment = &req.Treatment
	}
	if req.Prescription != "" {
		record.Prescription = &req.Prescription
	}
	if req.Notes != "" {
		record.Notes = &req.Notes
	}

	if err := h.Records.Create(record); err != nil {
		log.Println("CreateRecord: insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record, please try again"})
		return
	}

	// The visit date doubles as the patient's last-visit marker; a failure
	// here does not undo the record.
	if err := h.Patients.TouchLastVisit(req.PatientID, visitDate); err != nil {
		log.Println("CreateRecord: could not update last visit:", err)
	}

	c.JSON(http.StatusCreated, record)
}

// GetRecords lists medical records scoped by role: a patient sees their own
// history, a doctor the records they authored, staff everything.
func (h *Handler) GetRecords(c *gin.Context) {
	filter := stores.RecordFilter{}

	switch c.GetString(middleware.CtxSubjectType) {
	case session.SubjectPatient:
		filter.PatientID = c.GetString(middleware.CtxSubjectID)
	case session.SubjectDoctor:
		filter.DoctorID = c.GetString(middleware.CtxSubjectID)
	default:
		if patientID := c.Query("patientId"); patientID != "" {
			filter.PatientID = patientID
		}
	}

	records, err := h.Records.List(filter)
	if err != nil {
		log.Println("GetRecords: query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve records"})
		return
	}

	if records == nil {
		records = make([]models.MedicalRecord, 0)
	}
	c.JSON(http.StatusOK, records)
}
