package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citycare/mydoctor-api/internal/auth"
	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/session"
	"github.com/citycare/mydoctor-api/internal/stores"
	"github.com/citycare/mydoctor-api/internal/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Login verifies credentials across the three principal tables and, on
// success, writes the session cookie set and returns a bearer token for API
// clients.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Verifier.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Println("Login: credential check failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during login"})
		return
	}

	// Mint the API token before writing any cookies so a signing failure
	// cannot produce an error response that carries a live session. When no
	// secret is configured the token is simply omitted; cookie login still
	// works.
	var token string
	if len(h.JWTSecret) > 0 {
		token, err = utils.GenerateJWT(h.JWTSecret, id.SubjectID, id.SubjectType, string(id.Role), h.Sessions.TTL())
		if err != nil {
			log.Println("Login: could not generate API token:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during login"})
			return
		}
	}

	h.Sessions.Issue(c, session.Session{
		SubjectID:   id.SubjectID,
		SubjectType: id.SubjectType,
		Role:        string(id.Role),
		Email:       id.Email,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    id.SubjectID,
			"name":  id.Name,
			"email": id.Email,
			"role":  id.Role,
			"type":  id.SubjectType,
		},
	})
}

// Signup is patient self-service registration. The email pre-check is a UX
// courtesy; the unique constraint is what actually rejects a concurrent
// duplicate.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  gin.H{"confirmPassword": "Passwords do not match"},
		})
		return
	}

	if _, err := h.Patients.FindByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		log.Println("Signup: email check failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account, please try again"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Println("Signup: failed to hash password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account, please try again"})
		return
	}

	patient := &models.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hashed,
		IsActive:  true,
	}
	if err := h.Patients.Create(patient); err != nil {
		if stores.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		log.Println("Signup: failed to create patient:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account, please try again"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Logout clears the session cookie set. Idempotent — clearing an absent
// session is not an error.
func (h *Handler) Logout(c *gin.Context) {
	h.Sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me resolves the current principal from the session cookies. A dangling
// session (principal deleted after login) resolves to 401, never a crash.
func (h *Handler) Me(c *gin.Context) {
	s, ok := session.FromRequest(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	principal, err := h.Verifier.ResolvePrincipal(s)
	if err != nil {
		log.Println("Me: principal lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile, please try again"})
		return
	}
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, principal)
}
