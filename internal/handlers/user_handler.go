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

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=ADMIN STAFF PATIENT"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	// Blank password leaves the stored hash unchanged.
	Password string `json:"password" binding:"omitempty,min=8"`
	Role     string `json:"role" binding:"required,oneof=ADMIN STAFF PATIENT"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		log.Println("ListUsers: query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users, please try again"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Users.FindByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		log.Println("CreateUser: email check failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user, please try again"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Println("CreateUser: failed to hash password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user, please try again"})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     models.Role(req.Role),
		Phone:    req.Phone,
		Image:    req.Image,
	}
	if err := h.Users.Create(user); err != nil {
		if stores.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		log.Println("CreateUser: insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user, please try again"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":  req.Name,
		"email": req.Email,
		"role":  req.Role,
		"phone": req.Phone,
		"image": req.Image,
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Println("UpdateUser: failed to hash password:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user, please try again"})
			return
		}
		updates["password"] = hashed
	}

	if err := h.Users.Update(id, updates); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if stores.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		log.Println("UpdateUser: update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteUser is a hard delete; there is no tombstone to restore from.
func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.Users.Delete(id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Println("DeleteUser: delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
