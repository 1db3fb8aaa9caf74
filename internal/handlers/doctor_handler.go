package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/stores"
	"github.com/citycare/mydoctor-api/internal/utils"
)

type CreateDoctorRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	LicenseNumber  string `json:"licenseNumber" binding:"required"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Department     string `json:"department"`
}

type UpdateDoctorRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"omitempty,min=8"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	LicenseNumber  string `json:"licenseNumber" binding:"required"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Department     string `json:"department"`
	IsActive       *bool  `json:"isActive"`
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List()
	if err != nil {
		log.Println("ListDoctors: query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load doctors, please try again"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor pre-checks email and license for friendlier messages; the
// unique constraints reject whatever slips between check and insert.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Doctors.FindByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		log.Println("CreateDoctor: email check failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor, please try again"})
		return
	}

	if _, err := h.Doctors.FindByLicense(req.LicenseNumber); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "License number already in use"})
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		log.Println("CreateDoctor: license check failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor, please try again"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Println("CreateDoctor: failed to hash password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor, please try again"})
		return
	}

	doctor := &models.Doctor{
		Email:          req.Email,
		Password:       hashed,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		Phone:          req.Phone,
		Address:        req.Address,
		IsActive:       true,
	}
	if req.Department != "" {
		doctor.Department = &req.Department
	}

	if err := h.Doctors.Create(doctor); err != nil {
		if stores.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A doctor with this email or license number already exists"})
			return
		}
		log.Println("CreateDoctor: insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor, please try again"})
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id := c.Param("id")

	var req UpdateDoctorRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"email":          req.Email,
		"first_name":     req.FirstName,
		"last_name":      req.LastName,
		"specialization": req.Specialization,
		"license_number": req.LicenseNumber,
		"phone":          req.Phone,
		"address":        req.Address,
	}
	if req.Department != "" {
		updates["department"] = req.Department
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Println("UpdateDoctor: failed to hash password:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor, please try again"})
			return
		}
		updates["password"] = hashed
	}

	if err := h.Doctors.Update(id, updates); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		if stores.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A doctor with this email or license number already exists"})
			return
		}
		log.Println("UpdateDoctor: update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")

	if err := h.Doctors.Delete(id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		log.Println("DeleteDoctor: delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
