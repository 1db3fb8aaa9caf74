package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/citycare/mydoctor-api/internal/session"
	"github.com/citycare/mydoctor-api/internal/stores"
)

// Page-data loaders. The route gate has already run by the time these
// execute; they resolve the current principal for display data the way the
// page components expect it.

func (h *Handler) HomePage(c *gin.Context) {
	data := gin.H{"page": "home"}

	if s, ok := session.FromRequest(c.Request); ok {
		principal, err := h.Verifier.ResolvePrincipal(s)
		if err != nil {
			log.Println("HomePage: principal lookup failed:", err)
		} else if principal != nil {
			data["user"] = principal
		}
	}

	c.JSON(http.StatusOK, data)
}

// AdminDashboardPage returns the counters shown on the admin landing page.
func (h *Handler) AdminDashboardPage(c *gin.Context) {
	doctors, err := h.Doctors.Count()
	if err != nil {
		log.Println("AdminDashboardPage: doctor count failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard, please try again"})
		return
	}
	patients, err := h.Patients.Count()
	if err != nil {
		log.Println("AdminDashboardPage: patient count failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard, please try again"})
		return
	}
	appointments, err := h.Appointments.Count()
	if err != nil {
		log.Println("AdminDashboardPage: appointment count failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":         "admin",
		"doctors":      doctors,
		"patients":     patients,
		"appointments": appointments,
	})
}

// DoctorDashboardPage shows the signed-in doctor their upcoming schedule.
// The gate also lets admins through; they see the whole schedule.
func (h *Handler) DoctorDashboardPage(c *gin.Context) {
	s, _ := session.FromRequest(c.Request)

	filter := stores.AppointmentFilter{From: time.Now()}
	if s.SubjectType == session.SubjectDoctor {
		filter.DoctorID = s.SubjectID
	}

	upcoming, err := h.Appointments.List(filter)
	if err != nil {
		log.Println("DoctorDashboardPage: query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     "doctor-dashboard",
		"upcoming": upcoming,
	})
}

// AuthPage is the shared loader behind /login, /signup and friends. The
// interesting behavior — bouncing already-authenticated visitors — lives in
// the route gate, not here.
func (h *Handler) AuthPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": c.Request.URL.Path})
}
