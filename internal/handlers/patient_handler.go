package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/stores"
	"github.com/citycare/mydoctor-api/internal/utils"
)

type CreatePatientRequest struct {
	Email                 string `json:"email" binding:"required,email"`
	Password              string `json:"password" binding:"required,min=8"`
	FirstName             string `json:"firstName" binding:"required"`
	LastName              string `json:"lastName" binding:"required"`
	Phone                 string `json:"phone"`
	DateOfBirth           string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender                string `json:"gender"`
	BloodType             string `json:"bloodType"`
	Allergies             string `json:"allergies"`
	MedicalHistory        string `json:"medicalHistory"`
	InsuranceProvider     string `json:"insuranceProvider"`
	InsuranceNumber       string `json:"insuranceNumber"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
}

type UpdatePatientRequest struct {
	Email                 string `json:"email" binding:"required,email"`
	Password              string `json:"password" binding:"omitempty,min=8"`
	FirstName             string `json:"firstName" binding:"required"`
	LastName              string `json:"lastName" binding:"required"`
	Phone                 string `json:"phone"`
	DateOfBirth           string `json:"dateOfBirth"`
	Gender                string `json:"gender"`
	BloodType             string `json:"bloodType"`
	Allergies             string `json:"allergies"`
	MedicalHistory        string `json:"medicalHistory"`
	InsuranceProvider     string `json:"insuranceProvider"`
	InsuranceNumber       string `json:"insuranceNumber"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	IsActive              *bool  `json:"isActive"`
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.Patients.List()
	if err != nil {
		log.Println("ListPatients: query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load patients, please try again"})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Patients.FindByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		log.Println("CreatePatient: email check failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient, please try again"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Println("CreatePatient: failed to hash password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient, please try again"})
		return
	}

	patient := &models.Patient{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateOfBirth, use YYYY-MM-DD"})
			return
		}
		patient.DateOfBirth = &dob
	}
	setOptional(&patient.Gender, req.Gender)
	setOptional(&patient.BloodType, req.BloodType)
	setOptional(&patient.Allergies, req.Allergies)
	setOptional(&patient.MedicalHistory, req.MedicalHistory)
	setOptional(&patient.InsuranceProvider, req.InsuranceProvider)
	setOptional(&patient.InsuranceNumber, req.InsuranceNumber)
	setOptional(&patient.EmergencyContactName, req.EmergencyContactName)
	setOptional(&patient.EmergencyContactPhone, req.EmergencyContactPhone)

	if err := h.Patients.Create(patient); err != nil {
		if stores.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		log.Println("CreatePatient: insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient, please try again"})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePatientRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"email":      req.Email,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateOfBirth, use YYYY-MM-DD"})
			return
		}
		updates["date_of_birth"] = dob
	}
	addOptional(updates, "gender", req.Gender)
	addOptional(updates, "blood_type", req.BloodType)
	addOptional(updates, "allergies", req.Allergies)
	addOptional(updates, "medical_history", req.MedicalHistory)
	addOptional(updates, "insurance_provider", req.InsuranceProvider)
	addOptional(updates, "insurance_number", req.InsuranceNumber)
	addOptional(updates, "emergency_contact_name", req.EmergencyContactName)
	addOptional(updates, "emergency_contact_phone", req.EmergencyContactPhone)
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Println("UpdatePatient: failed to hash password:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update patient, please try again"})
			return
		}
		updates["password"] = hashed
	}

	if err := h.Patients.Update(id, updates); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		if stores.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		log.Println("UpdatePatient: update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update patient, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id := c.Param("id")

	if err := h.Patients.Delete(id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Println("DeletePatient: delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patient, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func setOptional(dst **string, v string) {
	if v != "" {
		*dst = &v
	}
}

func addOptional(updates map[string]interface{}, column, v string) {
	if v != "" {
		updates[column] = v
	}
}
