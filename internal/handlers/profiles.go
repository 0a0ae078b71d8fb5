package handlers

import (
	"errors"
	"net/http"

	"github.com/catalys/platform/internal/middleware"
	"github.com/catalys/platform/internal/models"
	"github.com/catalys/platform/internal/services"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetCurrentProfile returns the caller's founder/investor profile, or null
// when none exists yet
func (h *ProfileHandler) GetCurrentProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusOK, gin.H{"profile": nil})
		return
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ProfileRequest represents profile creation/update input
type ProfileRequest struct {
	UserType models.UserType `json:"user_type" binding:"required,oneof=FOUNDER INVESTOR"`
}

// CreateProfile classifies the caller as founder or investor
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Create(userID, req.UserType)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User profile already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// UpdateProfile changes the caller's classification
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Update(userID, req.UserType)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
